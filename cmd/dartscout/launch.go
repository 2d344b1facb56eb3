// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"
	"dartscout-cli/internal/launch"

	"github.com/spf13/cobra"
)

// launchLoadIssue maps a launch-file load failure to its catalog entry: a
// missing file gets pointed at the path, everything else at the syntax.
func launchLoadIssue(err error) issue.Id {
	if errors.Is(err, os.ErrNotExist) {
		return issue.LaunchFileNotFoundId
	}
	return issue.LaunchParseErrorId
}

// resolvedLaunch is the JSON document handed to the external debug adapter:
// the resolved configuration plus the origin classification of its program.
type resolvedLaunch struct {
	launch.Config
	ProgramOrigin launch.Origin `json:"programOrigin"`
}

// newLaunchCommand creates the `dartscout launch` command.
func newLaunchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <file>",
		Short: "Resolve a launch configuration",
		Long: `Resolve a launch configuration file (CUE validated against the #Launch
schema, or plain JSON): relative paths are made absolute, discovered SDK
paths are injected, and the program is classified as SDK, pub-cache, or
local code. The resolved configuration is emitted as JSON for an external
debug adapter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := launch.Load(args[0])
			if err != nil {
				renderIssueToStderr(launchLoadIssue(err))
				return err
			}

			// Classify from the launch file's directory so workspace
			// overrides near the project apply.
			folder := filepath.Dir(args[0])
			userCfg := config.Get()
			wctx := newClassifier(userCfg).Classify(cmd.Context(), []string{folder})

			resolved, err := launch.Resolve(*cfg, wctx, userCfg)
			if err != nil {
				if errors.Is(err, launch.ErrProgramNotFound) {
					renderIssueToStderr(issue.ProgramNotFoundId)
				}
				return err
			}

			out := resolvedLaunch{
				Config:        resolved,
				ProgramOrigin: launch.Categorize(resolved.Program, wctx.Sdks),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
