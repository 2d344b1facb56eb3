// SPDX-License-Identifier: MPL-2.0

// Package sdk locates Dart and Flutter SDK installations. Discovery walks an
// ordered candidate list (workspace overrides first, PATH last), probes each
// directory for the platform launcher, resolves symlinks, and confirms true
// SDK roots with a type-specific post-filter.
package sdk

import (
	"path/filepath"

	"dartscout-cli/pkg/fspath"
	"dartscout-cli/pkg/platform"
)

// snapShim is the package-manager shim sentinel. Declared as a variable so
// tests can point it at a fixture path.
var snapShim = platform.SnapFlutterShim

// IsSnapShim reports whether path is the snap shim sentinel, meaning the
// package manager has not yet materialized a real SDK.
func IsSnapShim(path string) bool {
	return path != "" && path == snapShim
}

// SearchPaths probes the candidate directories, in order, for executable and
// returns the first confirmed SDK root.
//
// Each non-bin candidate expands to two entries (the original, then its bin/
// subdirectory) so callers can pass SDK roots and bin dirs interchangeably.
// Candidates whose expansion does not contain the executable as a regular
// file are skipped. The surviving executable is resolved through symlinks;
// a resolution landing on the snap shim short-circuits as the sentinel,
// otherwise the SDK root is two directory levels above the real binary
// (undoing bin/<executable>).
//
// The full expanded candidate list is always returned; duplicates are kept
// because first-match-wins ordering, not uniqueness, decides the result.
func SearchPaths(candidates []string, executable string, postFilter PostFilter) SearchResult {
	expanded := expandCandidates(fspath.ExpandAll(candidates))

	result := SearchResult{CandidatePaths: expanded}

	for _, dir := range expanded {
		exe := filepath.Join(dir, executable)
		if !fspath.ExistsFile(exe) {
			continue
		}

		root := rootForExecutable(exe)
		if IsSnapShim(root) {
			// The shim is not a real root; surface it so the locator can run
			// the lazy initializer and search again. Candidates after the
			// shim are not consulted: when initialization fails the search
			// reads as not-found rather than falling through to a later
			// entry.
			result.SDKPath = root
			return result
		}
		if postFilter == nil || postFilter(root) {
			result.SDKPath = root
			return result
		}
	}

	return result
}

// expandCandidates appends a bin/ variant after each candidate that does not
// already end in a bin or sbin segment, preserving relative order.
func expandCandidates(candidates []string) []string {
	out := make([]string, 0, 2*len(candidates))
	for _, c := range candidates {
		out = append(out, c)
		if !fspath.IsBinDir(c) {
			out = append(out, filepath.Join(c, "bin"))
		}
	}
	return out
}

// rootForExecutable resolves exe through symlinks and derives the SDK root.
func rootForExecutable(exe string) string {
	resolved := fspath.Resolve(exe)
	if IsSnapShim(resolved) {
		return resolved
	}
	return filepath.Dir(filepath.Dir(resolved))
}
