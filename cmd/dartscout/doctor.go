// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/doctor"
	"dartscout-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newDoctorCommand creates the `dartscout doctor` command.
func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [dart|flutter]",
		Short: "Diagnose and recover a missing SDK",
		Long: `Run SDK discovery and, when the requested SDK cannot be found, walk
through recovery: point dartscout at an installation manually, open the
download page, or inspect the session log. A manually located SDK is
persisted to the configuration file.`,
		ValidArgs: []string{"dart", "flutter"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := doctor.KindDart
			if len(args) == 1 && args[0] == "flutter" {
				kind = doctor.KindFlutter
			}

			cfg := config.Get()
			wctx := newClassifier(cfg).Classify(cmd.Context(), []string{"."})

			found := wctx.Sdks.Dart
			if kind == doctor.KindFlutter {
				found = wctx.Sdks.Flutter
			}
			if found != "" {
				fmt.Printf("%s %s\n", SuccessStyle.Render(string(kind)+" SDK:"), PathStyle.Render(found))
				return nil
			}

			failed := wctx.Searches.Dart
			if kind == doctor.KindFlutter {
				failed = wctx.Searches.Flutter
				if wctx.Searches.FlutterInitErr != nil {
					renderIssueToStderr(issue.SnapInitFailedId)
				}
			}
			renderIssueToStderr(issueFor(kind))

			result, err := doctor.New(cfg).Run(cmd.Context(), kind, failed)
			if err != nil {
				return err
			}
			if !result.Found() {
				return &ExitError{Code: 1}
			}

			fmt.Printf("%s %s\n", SuccessStyle.Render(string(kind)+" SDK:"), PathStyle.Render(result.SDKPath))
			return nil
		},
	}
}

func issueFor(kind doctor.Kind) issue.Id {
	if kind == doctor.KindFlutter {
		return issue.FlutterSdkNotFoundId
	}
	return issue.DartSdkNotFoundId
}
