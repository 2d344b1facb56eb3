// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"dartscout-cli/pkg/platform"

	"github.com/google/go-cmp/cmp"
)

// canonTempDir returns a fresh temp dir with symlinks resolved, so fixture
// paths compare equal to the symlink-resolved paths the search reports.
func canonTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

// writeDartSdk lays out a minimal valid Dart SDK under root.
func writeDartSdk(t *testing.T, root string) {
	t.Helper()
	mustWriteFile(t, filepath.Join(root, "bin", platform.DartExecutable()))
	mustWriteFile(t, filepath.Join(root, filepath.FromSlash(platform.AnalysisServerSnapshot)))
}

// writeFlutterSdk lays out a minimal valid Flutter SDK under root.
func writeFlutterSdk(t *testing.T, root string) {
	t.Helper()
	mustWriteFile(t, filepath.Join(root, "bin", platform.FlutterExecutable()))
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// overrideSnapShim points the shim sentinel at path for one test.
func overrideSnapShim(t *testing.T, path string) {
	t.Helper()
	orig := snapShim
	snapShim = path
	t.Cleanup(func() { snapShim = orig })
}

func TestExpandCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "root gets bin variant",
			in:   []string{"/opt/dart"},
			want: []string{"/opt/dart", filepath.Join("/opt/dart", "bin")},
		},
		{
			name: "bin dir passes through unexpanded",
			in:   []string{"/opt/dart/bin"},
			want: []string{"/opt/dart/bin"},
		},
		{
			name: "root and its bin dir keep order, duplicates survive",
			in:   []string{"/opt/dart", "/opt/dart/bin"},
			want: []string{"/opt/dart", filepath.Join("/opt/dart", "bin"), "/opt/dart/bin"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := expandCandidates(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("expandCandidates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchPathsFindsRootFromEitherForm(t *testing.T) {
	t.Parallel()

	root := canonTempDir(t)
	writeDartSdk(t, root)

	tests := []struct {
		name       string
		candidates []string
	}{
		{name: "sdk root", candidates: []string{root}},
		{name: "bin dir", candidates: []string{filepath.Join(root, "bin")}},
		{name: "both forms", candidates: []string{root, filepath.Join(root, "bin")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := SearchPaths(tt.candidates, platform.DartExecutable(), HasDartSdk)
			if !res.Found() {
				t.Fatalf("expected SDK at %s, got none (candidates %v)", root, res.CandidatePaths)
			}
			if res.SDKPath != root {
				t.Errorf("SDKPath = %q, want %q", res.SDKPath, root)
			}
		})
	}
}

func TestSearchPathsFirstMatchWins(t *testing.T) {
	t.Parallel()

	first := filepath.Join(canonTempDir(t), "first")
	second := filepath.Join(canonTempDir(t), "second")
	writeDartSdk(t, first)
	writeDartSdk(t, second)

	res := SearchPaths([]string{first, second}, platform.DartExecutable(), HasDartSdk)
	if res.SDKPath != first {
		t.Errorf("SDKPath = %q, want first candidate %q", res.SDKPath, first)
	}
}

func TestSearchPathsSkipsCandidatesFailingPostFilter(t *testing.T) {
	t.Parallel()

	// A bare VM install has the launcher but no analysis-server snapshot.
	bareVM := filepath.Join(t.TempDir(), "bare")
	mustWriteFile(t, filepath.Join(bareVM, "bin", platform.DartExecutable()))

	full := filepath.Join(canonTempDir(t), "full")
	writeDartSdk(t, full)

	res := SearchPaths([]string{bareVM, full}, platform.DartExecutable(), HasDartSdk)
	if res.SDKPath != full {
		t.Errorf("SDKPath = %q, want %q (bare VM must be skipped)", res.SDKPath, full)
	}
}

func TestSearchPathsReturnsCandidatesOnMiss(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")
	res := SearchPaths([]string{missing}, platform.DartExecutable(), HasDartSdk)

	if res.Found() {
		t.Fatalf("unexpected SDK at %q", res.SDKPath)
	}
	want := []string{missing, filepath.Join(missing, "bin")}
	if diff := cmp.Diff(want, res.CandidatePaths); diff != "" {
		t.Errorf("CandidatePaths mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchPathsResolvesSymlinkedExecutable(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == platform.Windows {
		t.Skip("symlink creation needs elevation on windows")
	}

	real := filepath.Join(t.TempDir(), "dart-sdk")
	writeDartSdk(t, real)

	linkBin := filepath.Join(t.TempDir(), "shims")
	if err := os.MkdirAll(linkBin, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(linkBin, platform.DartExecutable())
	if err := os.Symlink(filepath.Join(real, "bin", platform.DartExecutable()), link); err != nil {
		t.Fatal(err)
	}

	res := SearchPaths([]string{linkBin}, platform.DartExecutable(), HasDartSdk)
	resolvedReal, err := filepath.EvalSymlinks(real)
	if err != nil {
		t.Fatal(err)
	}
	if res.SDKPath != resolvedReal {
		t.Errorf("SDKPath = %q, want symlink target root %q", res.SDKPath, resolvedReal)
	}
}

func TestSearchPathsSurfacesSnapShim(t *testing.T) {
	if runtime.GOOS == platform.Windows {
		t.Skip("symlink creation needs elevation on windows")
	}

	shimDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	shim := filepath.Join(shimDir, platform.FlutterExecutable())
	mustWriteFile(t, shim)
	overrideSnapShim(t, shim)

	// A PATH entry whose flutter symlinks to the shim.
	pathDir := t.TempDir()
	if err := os.Symlink(shim, filepath.Join(pathDir, platform.FlutterExecutable())); err != nil {
		t.Fatal(err)
	}

	res := SearchPaths([]string{pathDir}, platform.FlutterExecutable(), HasFlutterSdk)
	if !IsSnapShim(res.SDKPath) {
		t.Fatalf("SDKPath = %q, want shim sentinel %q", res.SDKPath, shim)
	}
	if res.Found() {
		t.Error("Found() must be false for the shim sentinel")
	}
}

func TestSearchPathsShimShadowsLaterCandidates(t *testing.T) {
	if runtime.GOOS == platform.Windows {
		t.Skip("symlink creation needs elevation on windows")
	}

	shimDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	shim := filepath.Join(shimDir, platform.FlutterExecutable())
	mustWriteFile(t, shim)
	overrideSnapShim(t, shim)

	shimPathDir := t.TempDir()
	if err := os.Symlink(shim, filepath.Join(shimPathDir, platform.FlutterExecutable())); err != nil {
		t.Fatal(err)
	}

	// A complete SDK listed after the shim entry.
	realRoot, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	realRoot = filepath.Join(realRoot, "flutter")
	writeFlutterSdk(t, realRoot)

	res := SearchPaths([]string{shimPathDir, realRoot}, platform.FlutterExecutable(), HasFlutterSdk)
	if !IsSnapShim(res.SDKPath) {
		t.Fatalf("SDKPath = %q, want shim sentinel ahead of %q", res.SDKPath, realRoot)
	}
}

func TestIsSnapShim(t *testing.T) {
	overrideSnapShim(t, "/fixture/snap/flutter")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "sentinel", path: "/fixture/snap/flutter", want: true},
		{name: "real root", path: "/opt/flutter", want: false},
		{name: "empty", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSnapShim(tt.path); got != tt.want {
				t.Errorf("IsSnapShim(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
