// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride forces a specific config file (--config flag).
	configFilePathOverride string

	// cachedConfig is the last successfully loaded configuration. Load()
	// returns it on subsequent calls until Reset() clears it.
	cachedConfig *Config
)

// Reset clears test overrides and the cached config. Call from test cleanup
// to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
	cachedConfig = nil
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
	cachedConfig = nil
}

// SetConfigFilePathOverride forces loading from a specific config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
	cachedConfig = nil
}

// Load reads the configuration, caching the result for subsequent calls.
// On load failure the defaults are returned alongside the error so callers
// always get a usable config.
func Load() (*Config, error) {
	if cachedConfig != nil {
		return cachedConfig, nil
	}

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		return DefaultConfig(), err
	}

	cachedConfig = cfg
	return cfg, nil
}

// Get returns the cached config, loading it first if needed. Unlike Load,
// it never returns an error: on failure the defaults are returned.
func Get() *Config {
	cfg, _ := Load()
	return cfg
}
