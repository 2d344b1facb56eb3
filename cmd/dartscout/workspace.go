// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"
	"dartscout-cli/internal/watch"
	"dartscout-cli/internal/workspace"
	"dartscout-cli/pkg/fspath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newWorkspaceCommand creates the `dartscout workspace` command.
func newWorkspaceCommand() *cobra.Command {
	var (
		jsonOut   bool
		watchMode bool
	)

	cmd := &cobra.Command{
		Use:   "workspace [folder...]",
		Short: "Classify workspace folders",
		Long: `Classify the given workspace folders (default: the current directory):
which are Flutter projects, which are plain Dart, whether web packages are
involved, and which special roots (Git, Fuchsia, Bazel) enclose them.

With --watch, the workspace is re-classified whenever a marker file
(pubspec.yaml, package_config.json, WORKSPACE, *.iml) changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders := args
			if len(folders) == 0 {
				folders = []string{"."}
			}
			for _, folder := range folders {
				if fspath.ExistsDir(fspath.Expand(folder)) {
					continue
				}
				renderIssueToStderr(issue.WorkspaceScanFailedId)
				return issue.NewErrorContext().
					WithOperation("scan workspace").
					WithResource(folder).
					WithSuggestion("Check that the folder exists and is readable").
					BuildError()
			}

			classify := func(ctx context.Context) *workspace.Context {
				wctx := newClassifier(config.Get()).Classify(ctx, folders)
				reportWorkspace(wctx, jsonOut)
				return wctx
			}

			wctx := classify(cmd.Context())

			if !watchMode {
				if !wctx.HasAnyProjects() && !wctx.HasFuchsiaNonDartProject {
					return &ExitError{Code: 1}
				}
				return nil
			}

			w, err := watch.New(watch.Config{
				Folders: wctx.Folders,
				OnChange: func(ctx context.Context, changed []string) error {
					log.Info("workspace changed, re-classifying", "files", len(changed))
					classify(ctx)
					return nil
				},
			})
			if err != nil {
				return err
			}
			log.Info("watching for workspace changes", "folders", len(wctx.Folders))
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-classify when marker files change")
	return cmd
}

func reportWorkspace(wctx *workspace.Context, jsonOut bool) {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(wctx)
		return
	}

	fmt.Println(TitleStyle.Render("Workspace"))
	for _, folder := range wctx.Folders {
		fmt.Printf("  %s\n", PathStyle.Render(folder))
	}

	flag := func(name string, set bool) {
		style := SubtitleStyle
		if set {
			style = SuccessStyle
		}
		fmt.Printf("  %-24s %s\n", name, style.Render(fmt.Sprintf("%v", set)))
	}
	flag("flutter projects", wctx.HasFlutterProjects)
	flag("web projects", wctx.HasWebProjects)
	flag("standard dart projects", wctx.HasStandardDartProjects)
	flag("fuchsia non-dart", wctx.HasFuchsiaNonDartProject)

	root := func(name, path string) {
		if path != "" {
			fmt.Printf("  %-24s %s\n", name, PathStyle.Render(path))
		}
	}
	root("git root", wctx.GitRoot)
	root("fuchsia root", wctx.FuchsiaRoot)
	root("bazel root", wctx.BazelRoot)

	printSdks(wctx)
}
