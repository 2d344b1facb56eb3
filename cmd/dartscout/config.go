// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `dartscout config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dartscout configuration",
		Long: `Manage dartscout configuration.

Configuration is stored in:
  - Linux: ~/.config/dartscout/config.cue
  - macOS: ~/Library/Application Support/dartscout/config.cue
  - Windows: %APPDATA%\dartscout\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var showFile string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), showFile)
		},
	}
	showCmd.Flags().StringVar(&showFile, "file", "", "inspect a specific config file instead of the default")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	var dumpFile string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFromDisk(cmd.Context(), dumpFile)
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&dumpFile, "file", "", "dump a specific config file instead of the default")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

// loadConfigFromDisk reads configuration through an uncached Provider so the
// inspection commands reflect current disk state, not the process cache. An
// empty file argument uses the default config lookup.
func loadConfigFromDisk(ctx context.Context, file string) (*config.Config, error) {
	return config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: file})
}

func showConfig(ctx context.Context, file string) error {
	cfg, err := loadConfigFromDisk(ctx, file)
	if err != nil {
		renderIssueToStderr(issue.ConfigLoadFailedId)
		return err
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	entry := func(key, value string) {
		if value == "" {
			value = SubtitleStyle.Render("(unset)")
		}
		fmt.Printf("  %-24s %s\n", key, value)
	}
	entry("dart.sdk_path", string(cfg.Dart.SdkPath))
	entry("flutter.sdk_path", string(cfg.Flutter.SdkPath))
	entry("flutter.device_id", cfg.Flutter.DeviceID)
	entry("search_paths", fmt.Sprintf("%v", cfg.SearchPaths))
	entry("ui.color_scheme", string(cfg.UI.ColorScheme))
	entry("ui.verbose", fmt.Sprintf("%v", cfg.UI.Verbose))
	entry("log.file", cfg.Log.File)
	return nil
}

func initConfigFile() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", SuccessStyle.Render("Created"),
		PathStyle.Render(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)))
	return nil
}

func showConfigPath() error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
