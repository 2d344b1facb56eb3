// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSDKDirPath is returned when an SDKDirPath value is whitespace-only.
	ErrInvalidSDKDirPath = errors.New("invalid SDK directory path")
	// ErrInvalidSearchPath is returned when a search path entry is whitespace-only.
	ErrInvalidSearchPath = errors.New("invalid search path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SDKDirPath is a user-configured SDK root directory. The zero value ("")
	// is valid and means "discover the SDK instead of pinning it". Non-zero
	// values must not be whitespace-only; they may contain ~ and environment
	// variables, which the locator expands at search time.
	SDKDirPath string

	// InvalidSDKDirPathError is returned when an SDKDirPath value is
	// non-empty but whitespace-only.
	InvalidSDKDirPathError struct {
		Value SDKDirPath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// DartConfig pins or constrains Dart SDK discovery.
	DartConfig struct {
		// SdkPath is the Dart SDK root. Highest-priority user setting; only a
		// workspace override (Fuchsia/Bazel) outranks it.
		SdkPath SDKDirPath `mapstructure:"sdk_path"`
	}

	// FlutterConfig pins or constrains Flutter SDK discovery.
	FlutterConfig struct {
		// SdkPath is the Flutter SDK root.
		SdkPath SDKDirPath `mapstructure:"sdk_path"`
		// DeviceID is the default device injected into resolved launch
		// configurations when the launch file does not name one.
		DeviceID string `mapstructure:"device_id"`
	}

	// UIConfig controls terminal output behavior.
	UIConfig struct {
		// ColorScheme selects the output theme: auto, dark, or light.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables debug-level output.
		Verbose bool `mapstructure:"verbose"`
	}

	// LogConfig controls the session log file backing the doctor "Show Log" action.
	LogConfig struct {
		// File is the log file path; empty means <config dir>/dartscout.log.
		File string `mapstructure:"file"`
	}

	// PromptsConfig persists one-shot prompt flags so a dismissed offer is not
	// repeated on every run. Passed explicitly to the doctor flow; there is no
	// module-level "already prompted" singleton.
	PromptsConfig struct {
		// OfferedDownload records that the SDK download page was already offered.
		OfferedDownload bool `mapstructure:"offered_download"`
	}

	// Config is the root configuration structure, resolved once at load time
	// with explicit defaults for every field.
	Config struct {
		Dart    DartConfig    `mapstructure:"dart"`
		Flutter FlutterConfig `mapstructure:"flutter"`
		// SearchPaths are extra directories searched for both SDKs, between
		// the user's pinned paths and the well-known install locations.
		SearchPaths []string      `mapstructure:"search_paths"`
		UI          UIConfig      `mapstructure:"ui"`
		Log         LogConfig     `mapstructure:"log"`
		Prompts     PromptsConfig `mapstructure:"prompts"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q: must be one of auto, dark, light", e.Value)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// Error implements the error interface.
func (e *InvalidSDKDirPathError) Error() string {
	return fmt.Sprintf("invalid SDK directory path %q: must not be whitespace-only", e.Value)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *InvalidSDKDirPathError) Unwrap() error {
	return ErrInvalidSDKDirPath
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that the scheme is one of the recognized values.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Validate checks that a non-empty path is not whitespace-only.
func (p SDKDirPath) Validate() error {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return &InvalidSDKDirPathError{Value: p}
	}
	return nil
}

// IsSet reports whether the user pinned a path.
func (p SDKDirPath) IsSet() bool {
	return strings.TrimSpace(string(p)) != ""
}

// Validate checks all fields, collecting every violation rather than
// stopping at the first.
func (c *Config) Validate() error {
	var fieldErrors []error

	if err := c.Dart.SdkPath.Validate(); err != nil {
		fieldErrors = append(fieldErrors, err)
	}
	if err := c.Flutter.SdkPath.Validate(); err != nil {
		fieldErrors = append(fieldErrors, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		fieldErrors = append(fieldErrors, err)
	}
	for i, p := range c.SearchPaths {
		if strings.TrimSpace(p) == "" {
			fieldErrors = append(fieldErrors, fmt.Errorf("search_paths[%d]: %w", i, ErrInvalidSearchPath))
		}
	}

	if len(fieldErrors) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrors}
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Dart:        DartConfig{},
		Flutter:     FlutterConfig{},
		SearchPaths: nil,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log:     LogConfig{},
		Prompts: PromptsConfig{},
	}
}
