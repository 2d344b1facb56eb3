// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"path/filepath"
	"strings"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"
	"dartscout-cli/internal/workspace"
	"dartscout-cli/pkg/fspath"
)

// ErrProgramNotFound reports that the resolved program path does not exist.
// Callers match it with errors.Is to pick the right user-facing guidance.
var ErrProgramNotFound = errors.New("program file not found")

// Resolve fills in everything the external debug adapter needs that the user
// left implicit: absolute program and cwd, discovered SDK paths, workspace
// tool arguments, the configured default device, and stepping toggles. The
// input is not mutated; the resolved copy is returned.
func Resolve(cfg Config, wctx *workspace.Context, userCfg *config.Config) (Config, error) {
	if strings.TrimSpace(cfg.Program) == "" {
		return Config{}, issue.NewErrorContext().
			WithOperation("resolve launch configuration").
			WithSuggestion("Set the program field to the entry-point script").
			Build()
	}

	cfg.CWD = fspath.Expand(cfg.CWD)
	// A relative program is anchored to the launch CWD, not the process one,
	// so the join must happen before expansion makes the path absolute.
	// Paths starting with ~ or an env reference expand on their own.
	if !filepath.IsAbs(cfg.Program) && cfg.CWD != "" &&
		!strings.HasPrefix(cfg.Program, "~") && !strings.HasPrefix(cfg.Program, "$") {
		cfg.Program = filepath.Join(cfg.CWD, cfg.Program)
	}
	cfg.Program = fspath.Expand(cfg.Program)
	if cfg.CWD == "" {
		// The program's package root, falling back to its directory for a
		// bare script outside any package.
		if root, ok := workspace.NearestPubspec(filepath.Dir(cfg.Program)); ok {
			cfg.CWD = root
		} else {
			cfg.CWD = filepath.Dir(cfg.Program)
		}
	}

	if !fspath.ExistsFile(cfg.Program) {
		return Config{}, issue.NewErrorContext().
			WithOperation("resolve launch configuration").
			WithResource(cfg.Program).
			WithSuggestion("Check the program path against the workspace layout").
			Wrap(ErrProgramNotFound).
			BuildError()
	}

	if cfg.DartSdkPath == "" {
		cfg.DartSdkPath = wctx.Sdks.Dart
	}
	if cfg.FlutterSdkPath == "" {
		cfg.FlutterSdkPath = wctx.Sdks.Flutter
	}

	if len(wctx.Config.FlutterToolArgs) > 0 {
		cfg.ToolArgs = append(append([]string{}, cfg.ToolArgs...), wctx.Config.FlutterToolArgs...)
	}

	if cfg.DeviceID == "" && userCfg != nil {
		cfg.DeviceID = userCfg.Flutter.DeviceID
	}

	// Stepping into SDK and pub-cache sources is opt-in.
	if cfg.DebugSdkLibraries == nil {
		cfg.DebugSdkLibraries = boolPtr(false)
	}
	if cfg.DebugExternalPackageLibraries == nil {
		cfg.DebugExternalPackageLibraries = boolPtr(false)
	}

	return cfg, nil
}

func boolPtr(v bool) *bool {
	return &v
}
