// SPDX-License-Identifier: MPL-2.0

package workspace

import "dartscout-cli/internal/sdk"

// Context is the outcome of one workspace scan. It is built exactly once per
// scan and never mutated afterward; a workspace change triggers a full
// rebuild, never an in-place update.
type Context struct {
	// Folders are the scanned top-level project folders, expanded to
	// absolute paths, in input order.
	Folders []string

	// GitRoot, FuchsiaRoot and BazelRoot are the memoized special roots
	// enclosing the workspace, empty when absent.
	GitRoot     string
	FuchsiaRoot string
	BazelRoot   string

	// Config carries SDK overrides contributed by special roots.
	Config WorkspaceConfig

	// FirstFlutterProject is the first folder classified as Flutter, kept as
	// the anchor for deriving the Flutter SDK from package-resolution
	// metadata.
	FirstFlutterProject string

	// Per-folder findings aggregated with OR semantics.
	HasFlutterProjects       bool
	HasWebProjects           bool
	HasStandardDartProjects  bool
	HasFuchsiaNonDartProject bool

	// Sdks is the discovery result for this workspace.
	Sdks sdk.Sdks

	// Searches holds the raw per-toolchain search results, kept for
	// diagnostics and the doctor flow's failure report.
	Searches sdk.Searches
}

// HasAnyProjects reports whether the scan recognized at least one Dart or
// Flutter project.
func (c *Context) HasAnyProjects() bool {
	return c.HasFlutterProjects || c.HasWebProjects || c.HasStandardDartProjects
}
