// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"path/filepath"
	"strings"

	"dartscout-cli/internal/sdk"
	"dartscout-cli/pkg/fspath"
	"dartscout-cli/pkg/platform"
)

// Categorize classifies a source file path against the discovered SDK roots
// and the pub cache. The result drives which sources the debugger steps into:
// SDK code needs DebugSdkLibraries, pub-cache code needs
// DebugExternalPackageLibraries, local code is always debugged.
func Categorize(path string, sdks sdk.Sdks) Origin {
	path = fspath.Expand(path)

	if sdks.Dart != "" && isWithin(sdks.Dart, path) {
		return OriginSDK
	}
	if sdks.Flutter != "" && isWithin(sdks.Flutter, path) {
		return OriginSDK
	}
	if cache := platform.PubCacheDir(); cache != "" && isWithin(cache, path) {
		return OriginPub
	}
	return OriginLocal
}

// isWithin reports whether path is base or lies underneath it.
func isWithin(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
