// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"path/filepath"

	"dartscout-cli/pkg/fspath"
	"dartscout-cli/pkg/platform"
)

// HasDartSdk confirms a full Dart SDK: the VM launcher alone is not enough,
// a bare VM checkout lacks the analysis-server snapshot that tooling needs.
func HasDartSdk(root string) bool {
	if !fspath.ExistsFile(filepath.Join(root, "bin", platform.DartExecutable())) {
		return false
	}
	return fspath.ExistsFile(filepath.Join(root, filepath.FromSlash(platform.AnalysisServerSnapshot)))
}

// HasFlutterSdk confirms a Flutter SDK root. Only the launcher script is
// required; bin/cache is populated lazily on first run.
func HasFlutterSdk(root string) bool {
	return fspath.ExistsFile(filepath.Join(root, "bin", platform.FlutterExecutable()))
}
