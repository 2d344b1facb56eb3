// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirAll(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindRootContaining(t *testing.T) {
	t.Parallel()

	// <base>/outer/.git, <base>/outer/inner/.git, start deep inside inner.
	base := t.TempDir()
	outer := mkdirAll(t, filepath.Join(base, "outer"))
	mkdirAll(t, filepath.Join(outer, ".git"))
	inner := mkdirAll(t, filepath.Join(outer, "inner"))
	mkdirAll(t, filepath.Join(inner, ".git"))
	start := mkdirAll(t, filepath.Join(inner, "lib", "src"))

	t.Run("nearest ancestor wins", func(t *testing.T) {
		t.Parallel()

		root, ok := FindRootContaining(start, ".git", true)
		if !ok || root != inner {
			t.Errorf("got (%q, %v), want (%q, true)", root, ok, inner)
		}
	})

	t.Run("start folder itself qualifies", func(t *testing.T) {
		t.Parallel()

		root, ok := FindRootContaining(inner, ".git", true)
		if !ok || root != inner {
			t.Errorf("got (%q, %v), want (%q, true)", root, ok, inner)
		}
	})

	t.Run("no ancestor has the marker", func(t *testing.T) {
		t.Parallel()

		root, ok := FindRootContaining(t.TempDir(), ".jiri_root", true)
		if ok || root != "" {
			t.Errorf("got (%q, %v), want (\"\", false)", root, ok)
		}
	})

	t.Run("marker with the wrong type does not match", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "WORKSPACE", "nested"), "x") // WORKSPACE as dir
		if _, ok := FindRootContaining(dir, "WORKSPACE", false); ok {
			t.Error("directory matched where a file was expected")
		}
	})

	t.Run("file marker", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "WORKSPACE"), "")
		child := mkdirAll(t, filepath.Join(dir, "pkg"))

		root, ok := FindRootContaining(child, "WORKSPACE", false)
		if !ok || root != dir {
			t.Errorf("got (%q, %v), want (%q, true)", root, ok, dir)
		}
	})

	t.Run("empty start", func(t *testing.T) {
		t.Parallel()

		if _, ok := FindRootContaining("", ".git", true); ok {
			t.Error("empty start folder matched")
		}
	})
}

func TestNearestPubspec(t *testing.T) {
	t.Parallel()

	pkg := t.TempDir()
	writeFile(t, filepath.Join(pkg, "pubspec.yaml"), "name: app\n")
	deep := mkdirAll(t, filepath.Join(pkg, "lib", "src", "widgets"))

	root, ok := NearestPubspec(deep)
	if !ok || root != pkg {
		t.Errorf("got (%q, %v), want (%q, true)", root, ok, pkg)
	}

	if _, ok := NearestPubspec(t.TempDir()); ok {
		t.Error("found a pubspec where none exists")
	}
}
