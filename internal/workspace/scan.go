// SPDX-License-Identifier: MPL-2.0

package workspace

import "dartscout-cli/pkg/fspath"

// rootKey identifies one memoized root lookup.
type rootKey struct {
	folder  string
	marker  string
	wantDir bool
}

type rootResult struct {
	root  string
	found bool
}

// scan holds per-scan memoization so sibling folders under the same tree do
// not repeat identical upward walks.
type scan struct {
	roots map[rootKey]rootResult
}

func newScan() *scan {
	return &scan{roots: make(map[rootKey]rootResult)}
}

// normalize expands a folder to an absolute path, dropping empties.
func (s *scan) normalize(folder string) string {
	return fspath.Expand(folder)
}

// root is FindRootContaining with scan-lifetime memoization.
func (s *scan) root(folder, marker string, wantDir bool) (string, bool) {
	key := rootKey{folder: folder, marker: marker, wantDir: wantDir}
	if res, ok := s.roots[key]; ok {
		return res.root, res.found
	}

	root, found := FindRootContaining(folder, marker, wantDir)
	s.roots[key] = rootResult{root: root, found: found}
	return root, found
}
