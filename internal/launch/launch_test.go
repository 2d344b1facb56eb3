// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/sdk"
	"dartscout-cli/internal/workspace"

	"github.com/google/go-cmp/cmp"
)

func writeLaunchFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCUE(t *testing.T) {
	t.Parallel()

	path := writeLaunchFile(t, "launch.cue", `
name:    "debug app"
program: "bin/main.dart"
args: ["--flag"]
deviceId: "linux"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		Name:     "debug app",
		Program:  "bin/main.dart",
		Args:     []string{"--flag"},
		DeviceID: "linux",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCUERejectsUnknownField(t *testing.T) {
	t.Parallel()

	path := writeLaunchFile(t, "launch.cue", `
program:  "bin/main.dart"
programm: "typo"
`)

	if _, err := Load(path); err == nil {
		t.Error("expected schema violation for unknown field")
	}
}

func TestLoadCUERequiresProgram(t *testing.T) {
	t.Parallel()

	path := writeLaunchFile(t, "launch.cue", `name: "no program"`)

	cfg, err := Load(path)
	// Schema validation without concreteness lets the field stay absent; the
	// resolver is the gate that rejects it.
	if err == nil && cfg.Program != "" {
		t.Errorf("Program = %q, want empty", cfg.Program)
	}
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := writeLaunchFile(t, "launch.json", `{"program": "bin/main.dart", "toolArgs": ["-d", "web"]}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Program != "bin/main.dart" {
		t.Errorf("Program = %q", cfg.Program)
	}
	if len(cfg.ToolArgs) != 2 {
		t.Errorf("ToolArgs = %v", cfg.ToolArgs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in the chain", err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	pkg := t.TempDir()
	if err := os.WriteFile(filepath.Join(pkg, "pubspec.yaml"), []byte("name: app\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	binDir := filepath.Join(pkg, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	program := filepath.Join(binDir, "main.dart")
	if err := os.WriteFile(program, []byte("void main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wctx := &workspace.Context{
		Sdks:   sdk.Sdks{Dart: "/opt/dart-sdk", Flutter: "/opt/flutter"},
		Config: workspace.WorkspaceConfig{FlutterToolArgs: []string{"--no-daemon"}},
	}
	userCfg := &config.Config{Flutter: config.FlutterConfig{DeviceID: "linux"}}

	in := Config{Program: "bin/main.dart", CWD: pkg, ToolArgs: []string{"-v"}}
	got, err := Resolve(in, wctx, userCfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if got.Program != program {
		t.Errorf("Program = %q, want %q", got.Program, program)
	}
	if got.CWD != pkg {
		t.Errorf("CWD = %q, want %q", got.CWD, pkg)
	}
	if got.DartSdkPath != "/opt/dart-sdk" || got.FlutterSdkPath != "/opt/flutter" {
		t.Errorf("SDK paths = (%q, %q)", got.DartSdkPath, got.FlutterSdkPath)
	}
	if diff := cmp.Diff([]string{"-v", "--no-daemon"}, got.ToolArgs); diff != "" {
		t.Errorf("ToolArgs mismatch (-want +got):\n%s", diff)
	}
	if got.DeviceID != "linux" {
		t.Errorf("DeviceID = %q, want configured default", got.DeviceID)
	}
	if got.DebugSdkLibraries == nil || *got.DebugSdkLibraries {
		t.Error("DebugSdkLibraries should default to false")
	}
	if got.DebugExternalPackageLibraries == nil || *got.DebugExternalPackageLibraries {
		t.Error("DebugExternalPackageLibraries should default to false")
	}

	// The input must not have been mutated.
	if in.Program != "bin/main.dart" || len(in.ToolArgs) != 1 {
		t.Error("Resolve mutated its input")
	}
}

func TestResolveDefaultsCWDToPackageRoot(t *testing.T) {
	t.Parallel()

	pkg := t.TempDir()
	if err := os.WriteFile(filepath.Join(pkg, "pubspec.yaml"), []byte("name: app\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	program := filepath.Join(pkg, "bin", "main.dart")
	if err := os.MkdirAll(filepath.Dir(program), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(program, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(Config{Program: program}, &workspace.Context{}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.CWD != pkg {
		t.Errorf("CWD = %q, want package root %q", got.CWD, pkg)
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	if _, err := Resolve(Config{}, &workspace.Context{}, nil); err == nil {
		t.Error("expected error for empty program")
	}

	missing := Config{Program: filepath.Join(t.TempDir(), "gone.dart")}
	_, err := Resolve(missing, &workspace.Context{}, nil)
	if err == nil {
		t.Fatal("expected error for missing program file")
	}
	if !errors.Is(err, ErrProgramNotFound) {
		t.Errorf("error = %v, want ErrProgramNotFound in the chain", err)
	}
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := filepath.Join(dir, "main.dart")
	if err := os.WriteFile(program, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	wctx := &workspace.Context{Sdks: sdk.Sdks{Dart: "/discovered/dart"}}
	in := Config{
		Program:     program,
		DartSdkPath: "/pinned/dart",
		DeviceID:    "macos",
	}

	got, err := Resolve(in, wctx, &config.Config{Flutter: config.FlutterConfig{DeviceID: "linux"}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.DartSdkPath != "/pinned/dart" {
		t.Errorf("DartSdkPath = %q, explicit value must win", got.DartSdkPath)
	}
	if got.DeviceID != "macos" {
		t.Errorf("DeviceID = %q, explicit value must win", got.DeviceID)
	}
}

func TestCategorize(t *testing.T) {
	pubCache := t.TempDir()
	t.Setenv("PUB_CACHE", pubCache)

	sdks := sdk.Sdks{
		Dart:    "/opt/dart-sdk",
		Flutter: "/opt/flutter",
	}

	tests := []struct {
		name string
		path string
		want Origin
	}{
		{name: "dart core library", path: "/opt/dart-sdk/lib/core/core.dart", want: OriginSDK},
		{name: "flutter framework", path: "/opt/flutter/packages/flutter/lib/widgets.dart", want: OriginSDK},
		{name: "sdk root itself", path: "/opt/dart-sdk", want: OriginSDK},
		{name: "pub cache package", path: filepath.Join(pubCache, "hosted", "pub.dev", "args-2.4.0", "lib", "args.dart"), want: OriginPub},
		{name: "user code", path: "/home/dev/app/lib/main.dart", want: OriginLocal},
		{name: "sibling with sdk prefix", path: "/opt/dart-sdk-old/lib/x.dart", want: OriginLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.path, sdks); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
