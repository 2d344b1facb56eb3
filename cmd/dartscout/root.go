// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for dartscout.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "dartscout",
		Short: "Dart and Flutter SDK discovery and workspace tooling",
		Long: TitleStyle.Render("dartscout") + SubtitleStyle.Render(" - Dart and Flutter SDK discovery and workspace tooling") + `

dartscout finds Dart and Flutter SDK installations across symlinks, snap
packages, Fuchsia and Bazel workspace layouts, classifies project folders
(Flutter, web, plain Dart), and prepares launch configurations for an
external debug adapter.

` + SubtitleStyle.Render("Examples:") + `
  dartscout sdks                 Locate SDKs for the current directory
  dartscout workspace ./app      Classify a workspace
  dartscout workspace --watch    Re-classify when marker files change
  dartscout doctor flutter       Interactive recovery for a missing SDK
  dartscout launch launch.cue    Resolve a launch configuration
  dartscout config show          Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dartscout/config.cue)")

	rootCmd.AddCommand(newSdksCommand())
	rootCmd.AddCommand(newWorkspaceCommand())
	rootCmd.AddCommand(newDoctorCommand())
	rootCmd.AddCommand(newLaunchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and wires up logging.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	setupLogging(cfg, verbose)
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
