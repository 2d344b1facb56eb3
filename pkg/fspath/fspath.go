// SPDX-License-Identifier: MPL-2.0

// Package fspath provides path expansion and probing helpers shared by the
// SDK locator and the workspace classifier. Expansion is best-effort: a
// malformed input is returned verbatim rather than producing an error, so
// callers can feed user-supplied configuration values straight through.
package fspath

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a possibly-relative, possibly ~-prefixed path containing
// environment-variable references into an absolute path.
//
// Rules, applied in order:
//   - "" stays ""
//   - $VAR / ${VAR} are expanded from the current environment
//   - a leading "~" (alone or followed by a separator) becomes the user home
//   - the result is made absolute against the current working directory
//
// Expand never fails: if the home directory or working directory cannot be
// determined, the input is returned as-is after whatever expansion succeeded.
func Expand(path string) string {
	if path == "" {
		return ""
	}

	expanded := os.ExpandEnv(path)

	if expanded == "~" || strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`) {
		home, err := os.UserHomeDir()
		if err == nil {
			expanded = filepath.Join(home, expanded[1:])
		}
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return expanded
	}
	return abs
}

// ExpandAll maps Expand over a candidate list, dropping empty entries while
// preserving relative order. The SDK search depends on order, not uniqueness,
// so duplicates are kept.
func ExpandAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		out = append(out, Expand(p))
	}
	return out
}

// Resolve follows symlinks to the real path of p. On failure (broken link,
// permission denied) the input is returned unchanged so the caller can still
// reason about the unresolved path.
func Resolve(p string) string {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return p
	}
	return resolved
}

// IsBinDir reports whether the final path segment is a conventional binary
// directory. Candidates that already point at bin/ must not be expanded with
// a second bin/ suffix during the SDK search.
func IsBinDir(p string) bool {
	base := filepath.Base(filepath.Clean(p))
	return base == "bin" || base == "sbin"
}

// ExistsFile reports whether p exists and is a regular file.
func ExistsFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// ExistsDir reports whether p exists and is a directory.
func ExistsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Home returns the user home directory, or "" when it cannot be determined.
func Home() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
