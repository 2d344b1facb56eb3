// SPDX-License-Identifier: MPL-2.0

package sdk

// Sdks is the outcome of a full discovery run. If Flutter is set, the root
// was confirmed to contain the Flutter launcher; if Dart is set, the root was
// confirmed to contain the Dart VM and the analysis-server snapshot.
type Sdks struct {
	// Dart is the Dart SDK root, empty when none was found.
	Dart string
	// DartSdkIsFromFlutter reports that Dart was found inside the Flutter
	// SDK's bin/cache rather than as a standalone install.
	DartSdkIsFromFlutter bool
	// DartVersion is the canonical semver from <root>/version, empty when
	// the file is missing or unparseable.
	DartVersion string
	// Flutter is the Flutter SDK root, empty when none was found.
	Flutter string
	// FlutterVersion is the canonical semver from <root>/version.
	FlutterVersion string
}

// SearchResult is the outcome of one executable search. CandidatePaths holds
// every directory considered, in probe order, for diagnostics and for the
// doctor flow's failure report.
type SearchResult struct {
	// SDKPath is the first root that satisfied the post-filter, or the snap
	// shim sentinel, or empty when nothing qualified.
	SDKPath string
	// CandidatePaths is the expanded, ordered candidate list. Duplicates are
	// preserved: correctness depends on order (first match wins), not
	// uniqueness.
	CandidatePaths []string
}

// Found reports whether the search produced a real SDK root (the shim
// sentinel does not count; it still needs initialization).
func (r SearchResult) Found() bool {
	return r.SDKPath != "" && !IsSnapShim(r.SDKPath)
}

// Searches pairs the raw per-toolchain search results of one discovery run.
type Searches struct {
	// Dart is the raw Dart search outcome.
	Dart SearchResult
	// Flutter is the raw Flutter search outcome.
	Flutter SearchResult
	// FlutterInitErr is the snap initialization failure that turned a shim
	// hit into a not-found result, nil otherwise.
	FlutterInitErr error `json:"-"`
}

// PostFilter confirms that a candidate root is a genuine, complete SDK
// installation, beyond merely containing the launcher.
type PostFilter func(root string) bool

// Overrides carries workspace-derived search inputs into the locator. The
// classifier fills it from special root types (Fuchsia, Bazel, SDK-repo
// checkouts); all fields are optional.
type Overrides struct {
	// DartSdkHome is a workspace-pinned Dart SDK root. Outranks user config.
	DartSdkHome string
	// FlutterSdkHome is a workspace-pinned Flutter SDK root.
	FlutterSdkHome string
	// FuchsiaRoot is the directory containing .jiri_root, when the workspace
	// is inside a Fuchsia checkout.
	FuchsiaRoot string
	// FlutterProject is the first Flutter project folder found during the
	// scan, used to derive the SDK from its package-resolution metadata.
	FlutterProject string
}
