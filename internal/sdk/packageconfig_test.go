// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writePackageConfig(t *testing.T, projectDir, content string) {
	t.Helper()
	dir := filepath.Join(projectDir, ".dart_tool")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "package_config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFlutterSdkFromPackageConfig(t *testing.T) {
	t.Parallel()

	sdkRoot := filepath.Join(t.TempDir(), "flutter")
	flutterPkg := filepath.Join(sdkRoot, "packages", "flutter")
	if err := os.MkdirAll(flutterPkg, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "file uri",
			content: fmt.Sprintf(`{"configVersion": 2, "packages": [
				{"name": "collection", "rootUri": "file:///nowhere/collection-1.18.0"},
				{"name": "flutter", "rootUri": "file://%s/"}
			]}`, flutterPkg),
			want: sdkRoot,
		},
		{
			name: "absolute path uri",
			content: fmt.Sprintf(`{"configVersion": 2, "packages": [
				{"name": "flutter", "rootUri": %q}
			]}`, flutterPkg),
			want: sdkRoot,
		},
		{
			name:    "no flutter package",
			content: `{"configVersion": 2, "packages": [{"name": "args", "rootUri": "file:///x/args"}]}`,
			want:    "",
		},
		{
			name:    "malformed json",
			content: `{"packages": [`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			projectDir := t.TempDir()
			writePackageConfig(t, projectDir, tt.content)

			if got := FlutterSdkFromPackageConfig(projectDir); got != tt.want {
				t.Errorf("FlutterSdkFromPackageConfig = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlutterSdkFromPackageConfigRelativeURI(t *testing.T) {
	t.Parallel()

	// Layout: <base>/sdk/packages/flutter and <base>/app/.dart_tool, with the
	// rootUri relative to the .dart_tool directory.
	base := t.TempDir()
	sdkRoot := filepath.Join(base, "sdk")
	if err := os.MkdirAll(filepath.Join(sdkRoot, "packages", "flutter"), 0o755); err != nil {
		t.Fatal(err)
	}

	projectDir := filepath.Join(base, "app")
	writePackageConfig(t, projectDir,
		`{"configVersion": 2, "packages": [{"name": "flutter", "rootUri": "../../sdk/packages/flutter/"}]}`)

	if got := FlutterSdkFromPackageConfig(projectDir); got != sdkRoot {
		t.Errorf("FlutterSdkFromPackageConfig = %q, want %q", got, sdkRoot)
	}
}

func TestFlutterSdkFromPackageConfigMissingInputs(t *testing.T) {
	t.Parallel()

	if got := FlutterSdkFromPackageConfig(""); got != "" {
		t.Errorf("empty project dir: got %q, want empty", got)
	}
	if got := FlutterSdkFromPackageConfig(t.TempDir()); got != "" {
		t.Errorf("project without .dart_tool: got %q, want empty", got)
	}
}
