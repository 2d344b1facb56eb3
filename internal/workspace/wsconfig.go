// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"path/filepath"

	"dartscout-cli/internal/sdk"
	"dartscout-cli/pkg/fspath"

	"github.com/spf13/viper"
)

// bazelConfigRelPath locates the machine-generated toolchain pointer file a
// Bazel workspace may carry for its Dart rules.
const bazelConfigRelPath = "dart/config.json"

// WorkspaceConfig carries SDK overrides discovered from special root types.
// It is created once per workspace scan and read-only afterward.
type WorkspaceConfig struct {
	// DartSdkHome pins the Dart SDK for this workspace. Outranks user config.
	DartSdkHome string
	// FlutterSdkHome pins the Flutter SDK for this workspace.
	FlutterSdkHome string
	// FlutterToolArgs are extra arguments the workspace wants passed to every
	// flutter tool invocation (Bazel wrapper scripts use this).
	FlutterToolArgs []string
	// Source names where the overrides came from, for diagnostics. Empty when
	// no special root contributed anything.
	Source string
}

// loadBazelConfig reads <root>/dart/config.json if the Bazel workspace
// provides one. A missing or malformed file yields an empty config: the
// pointer file is optional and only ever a hint.
func loadBazelConfig(bazelRoot string) WorkspaceConfig {
	v := viper.New()
	v.SetConfigFile(filepath.Join(bazelRoot, filepath.FromSlash(bazelConfigRelPath)))
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return WorkspaceConfig{}
	}

	cfg := WorkspaceConfig{
		DartSdkHome:     fspath.Expand(v.GetString("dartSdkHome")),
		FlutterSdkHome:  fspath.Expand(v.GetString("flutterSdkHome")),
		FlutterToolArgs: v.GetStringSlice("flutterToolArgs"),
	}
	if cfg.DartSdkHome != "" || cfg.FlutterSdkHome != "" || len(cfg.FlutterToolArgs) > 0 {
		cfg.Source = "bazel " + bazelConfigRelPath
	}
	return cfg
}

// overridesFor assembles the locator inputs from the scan's memoized roots
// and per-folder findings.
func (c *Context) overridesFor() sdk.Overrides {
	return sdk.Overrides{
		DartSdkHome:    c.Config.DartSdkHome,
		FlutterSdkHome: c.Config.FlutterSdkHome,
		FuchsiaRoot:    c.FuchsiaRoot,
		FlutterProject: c.FirstFlutterProject,
	}
}
