// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dart.SdkPath.IsSet() {
		t.Errorf("default dart.sdk_path should be unset, got %q", cfg.Dart.SdkPath)
	}
	if cfg.Flutter.SdkPath.IsSet() {
		t.Errorf("default flutter.sdk_path should be unset, got %q", cfg.Flutter.SdkPath)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("default ui.color_scheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("default ui.verbose should be false")
	}
	if cfg.Prompts.OfferedDownload {
		t.Error("default prompts.offered_download should be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want override %q", got, dir)
	}
}

func TestConfigDir_EndsWithAppName(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	got, err := ConfigDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if filepath.Base(got) != AppName {
		t.Errorf("ConfigDir() = %q, want %q leaf", got, AppName)
	}
}

func TestLogFilePath(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	t.Run("default under config dir", func(t *testing.T) {
		got, err := LogFilePath(DefaultConfig())
		if err != nil {
			t.Fatalf("LogFilePath() error: %v", err)
		}
		want := filepath.Join(dir, LogFileName)
		if got != want {
			t.Errorf("LogFilePath() = %q, want %q", got, want)
		}
	})

	t.Run("explicit file wins", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.File = "/tmp/custom.log"
		got, err := LogFilePath(cfg)
		if err != nil {
			t.Fatalf("LogFilePath() error: %v", err)
		}
		if got != "/tmp/custom.log" {
			t.Errorf("LogFilePath() = %q, want /tmp/custom.log", got)
		}
	})
}

func TestEnsureConfigDir(t *testing.T) {
	t.Cleanup(Reset)

	dir := filepath.Join(t.TempDir(), "nested", AppName)
	SetConfigDirOverride(dir)

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("EnsureConfigDir() did not create %q", dir)
	}
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigDirOverride(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("Load() without file should return defaults, got color_scheme %q", cfg.UI.ColorScheme)
	}
}

func TestLoad_ReturnsCachedConfig(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigDirOverride(t.TempDir())

	first, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("second Load() error: %v", err)
	}
	if first != second {
		t.Error("Load() should return the cached config on the second call")
	}
}

func TestLoadAndSave(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	cfg := DefaultConfig()
	cfg.Dart.SdkPath = "/opt/dart-sdk"
	cfg.Flutter.SdkPath = "~/flutter"
	cfg.Flutter.DeviceID = "linux"
	cfg.SearchPaths = []string{"/opt/sdks"}
	cfg.Prompts.OfferedDownload = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Saving must go through the real CUE load path on the way back.
	Reset()
	SetConfigDirOverride(dir)

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() error: %v", err)
	}

	if loaded.Dart.SdkPath != "/opt/dart-sdk" {
		t.Errorf("dart.sdk_path = %q, want /opt/dart-sdk", loaded.Dart.SdkPath)
	}
	if loaded.Flutter.SdkPath != "~/flutter" {
		t.Errorf("flutter.sdk_path = %q, want ~/flutter", loaded.Flutter.SdkPath)
	}
	if loaded.Flutter.DeviceID != "linux" {
		t.Errorf("flutter.device_id = %q, want linux", loaded.Flutter.DeviceID)
	}
	if len(loaded.SearchPaths) != 1 || loaded.SearchPaths[0] != "/opt/sdks" {
		t.Errorf("search_paths = %v, want [/opt/sdks]", loaded.SearchPaths)
	}
	if !loaded.Prompts.OfferedDownload {
		t.Error("prompts.offered_download should round-trip as true")
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte("bogus_field: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a config with unknown fields")
	}
}

func TestLoad_RejectsInvalidColorScheme(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte("ui: {color_scheme: \"sepia\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an unrecognized color scheme")
	}
}

func TestGenerateCUE_RoundTripShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dart.SdkPath = "/opt/dart-sdk"

	out := GenerateCUE(cfg)

	for _, want := range []string{"dart: {", "sdk_path: \"/opt/dart-sdk\"", "ui: {", "color_scheme: \"auto\""} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() missing %q in:\n%s", want, out)
		}
	}
}
