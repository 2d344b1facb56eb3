// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"os"
	"path/filepath"
	"regexp"

	"dartscout-cli/pkg/fspath"
)

const (
	// PubspecFilename is the per-package manifest declaring dependencies and
	// SDK constraints.
	PubspecFilename = "pubspec.yaml"

	// FlutterCreateTriggerFile marks a folder that was scaffolded as a
	// Flutter project but has no pubspec yet (template expansion pending).
	FlutterCreateTriggerFile = ".flutter_create_trigger"
)

// The manifest is scanned with regexes rather than parsed as YAML: the
// patterns below are the only facts needed and malformed YAML must still
// classify (a half-edited pubspec should not flip a project's type).
var (
	flutterSdkRe  = regexp.MustCompile(`(?im)sdk\s*:\s*flutter`)
	webPackagesRe = regexp.MustCompile(`(?im)^\s*(flutter_web|build_web_compilers)\s*:`)
)

// ReferencesFlutterSdk reports whether manifest content declares an SDK
// dependency on Flutter, in any letter case.
func ReferencesFlutterSdk(content []byte) bool {
	return flutterSdkRe.Match(content)
}

// ReferencesWebPackages reports whether manifest content depends on a web
// build stack.
func ReferencesWebPackages(content []byte) bool {
	return webPackagesRe.Match(content)
}

// readPubspec returns the manifest content of folder, or nil when the folder
// has no readable pubspec. Read errors count as absence.
func readPubspec(folder string) []byte {
	data, err := os.ReadFile(filepath.Join(folder, PubspecFilename))
	if err != nil {
		return nil
	}
	return data
}

// hasCreateTrigger reports whether folder carries the scaffold sentinel.
func hasCreateTrigger(folder string) bool {
	return fspath.ExistsFile(filepath.Join(folder, FlutterCreateTriggerFile))
}
