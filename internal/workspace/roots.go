// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"os"
	"path/filepath"

	"dartscout-cli/pkg/fspath"
)

// Well-known root markers.
const (
	// GitMarker marks a Git working tree root.
	GitMarker = ".git"
	// FuchsiaMarker marks a Fuchsia source checkout root.
	FuchsiaMarker = ".jiri_root"
	// BazelMarker marks a Bazel workspace root.
	BazelMarker = "WORKSPACE"
)

// FindRootContaining walks upward from start looking for a directory whose
// immediate child named marker has the expected type (directory when wantDir,
// regular file otherwise). It returns the nearest qualifying ancestor and
// true, or "" and false when the walk reaches the filesystem root without a
// match. Stat errors at any level (permissions, broken symlinks) are treated
// as no-match at that level, never as a failed walk.
func FindRootContaining(start, marker string, wantDir bool) (string, bool) {
	dir := fspath.Expand(start)
	if dir == "" {
		return "", false
	}

	for {
		if matchesMarker(filepath.Join(dir, marker), wantDir) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func matchesMarker(path string, wantDir bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir() == wantDir
}

// NearestPubspec walks upward from start and returns the directory of the
// nearest enclosing Dart package, the one whose pubspec governs start.
func NearestPubspec(start string) (string, bool) {
	return FindRootContaining(start, PubspecFilename, false)
}
