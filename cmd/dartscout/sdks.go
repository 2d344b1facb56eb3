// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"
	"dartscout-cli/internal/workspace"

	"github.com/spf13/cobra"
)

// newSdksCommand creates the `dartscout sdks` command.
func newSdksCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sdks [folder...]",
		Short: "Locate Dart and Flutter SDKs",
		Long: `Locate Dart and Flutter SDK installations for the given workspace
folders (default: the current directory). The search honors workspace
overrides (Bazel, Fuchsia, SDK-repo checkouts), user configuration,
well-known install locations, and PATH, in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders := args
			if len(folders) == 0 {
				folders = []string{"."}
			}

			wctx := newClassifier(config.Get()).Classify(cmd.Context(), folders)

			if wctx.Searches.FlutterInitErr != nil {
				renderIssueToStderr(issue.SnapInitFailedId)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(wctx.Sdks); err != nil {
					return err
				}
			} else {
				printSdks(wctx)
			}

			if wctx.Sdks.Dart == "" && wctx.Sdks.Flutter == "" {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")
	return cmd
}

func printSdks(wctx *workspace.Context) {
	fmt.Println(TitleStyle.Render("SDKs"))

	if wctx.Sdks.Dart != "" {
		detail := wctx.Sdks.DartVersion
		if wctx.Sdks.DartSdkIsFromFlutter {
			detail += " (from Flutter)"
		}
		fmt.Printf("  %s %s %s\n", SuccessStyle.Render("dart"), PathStyle.Render(wctx.Sdks.Dart), VerboseStyle.Render(detail))
	} else {
		fmt.Printf("  %s %s\n", ErrorStyle.Render("dart"), SubtitleStyle.Render("not found"))
	}

	if wctx.Sdks.Flutter != "" {
		fmt.Printf("  %s %s %s\n", SuccessStyle.Render("flutter"), PathStyle.Render(wctx.Sdks.Flutter), VerboseStyle.Render(wctx.Sdks.FlutterVersion))
	} else {
		fmt.Printf("  %s %s\n", ErrorStyle.Render("flutter"), SubtitleStyle.Render("not found"))
	}

	if wctx.Config.Source != "" {
		fmt.Printf("  %s\n", VerboseStyle.Render("overrides: "+wctx.Config.Source))
	}
}
