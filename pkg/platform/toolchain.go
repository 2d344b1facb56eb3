// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Launcher filenames and fixed SDK-relative paths. An SDK root is a directory
// whose bin/ subdirectory contains the platform launcher; a Dart root must
// additionally carry the analysis-server snapshot.
const (
	// AnalysisServerSnapshot is the SDK-relative path that distinguishes a
	// full Dart SDK from a bare VM checkout.
	AnalysisServerSnapshot = "bin/snapshots/analysis_server.dart.snapshot"

	// SnapFlutterShim is the resolved path of the flutter binary installed
	// through snap before the snap has materialized a real SDK. Encountering
	// it during a search means "run the lazy initializer, then search again".
	SnapFlutterShim = "/snap/bin/flutter"

	// SnapFlutterSDK is where the snap places the real Flutter SDK once its
	// lazy initialization has run.
	SnapFlutterSDK = "snap/flutter/common/flutter"
)

// DartExecutable returns the Dart VM launcher filename for the current OS.
func DartExecutable() string {
	if runtime.GOOS == Windows {
		return "dart.exe"
	}
	return "dart"
}

// FlutterExecutable returns the Flutter launcher filename for the current OS.
func FlutterExecutable() string {
	if runtime.GOOS == Windows {
		return "flutter.bat"
	}
	return "flutter"
}

// PubCacheDir returns the pub package cache location: $PUB_CACHE when set,
// otherwise %APPDATA%\Pub\Cache on Windows and ~/.pub-cache elsewhere.
// Returns "" when no location can be determined.
func PubCacheDir() string {
	if cache := os.Getenv("PUB_CACHE"); cache != "" {
		return cache
	}

	if runtime.GOOS == Windows {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Pub", "Cache")
		}
		return ""
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pub-cache")
}

// PathEntries returns the directories of the process PATH in order. These are
// the lowest-priority SDK candidates so a real install is never shadowed by
// an unrelated PATH entry.
func PathEntries() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}
