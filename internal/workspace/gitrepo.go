// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"path/filepath"
	"strings"

	"dartscout-cli/pkg/fspath"

	"github.com/go-git/go-git/v5"
)

// sdkRepoOverrides recognizes a workspace that IS an SDK repository checkout
// and pins the matching toolchain to it. A flutter/flutter clone is itself a
// working Flutter SDK; a dart-lang/sdk clone carries its built SDK under the
// build output tree. Detection inspects the checkout's git remotes; any
// failure (not a repo, no remotes, bare config) yields no overrides.
func sdkRepoOverrides(gitRoot string) WorkspaceConfig {
	repo, err := git.PlainOpen(gitRoot)
	if err != nil {
		return WorkspaceConfig{}
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return WorkspaceConfig{}
	}

	for _, remote := range remotes {
		for _, urlStr := range remote.Config().URLs {
			switch {
			case isFlutterRepoURL(urlStr):
				return WorkspaceConfig{
					FlutterSdkHome: gitRoot,
					Source:         "flutter repo checkout",
				}
			case isDartRepoURL(urlStr):
				if built := builtDartSdk(gitRoot); built != "" {
					return WorkspaceConfig{
						DartSdkHome: built,
						Source:      "dart-sdk repo checkout",
					}
				}
			}
		}
	}

	return WorkspaceConfig{}
}

func isFlutterRepoURL(url string) bool {
	url = normalizeRepoURL(url)
	return strings.HasSuffix(url, "flutter/flutter")
}

func isDartRepoURL(url string) bool {
	url = normalizeRepoURL(url)
	return strings.HasSuffix(url, "dart-lang/sdk") || strings.HasSuffix(url, "dart/sdk")
}

// normalizeRepoURL strips the parts that vary between clone styles (https vs
// ssh vs googlesource, trailing .git) so suffix checks see only org/repo.
func normalizeRepoURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")
	url = strings.TrimSuffix(url, ".git")
	return strings.ReplaceAll(url, ":", "/")
}

// builtDartSdk looks for the build output the dart-sdk repo produces. Only
// the common release configurations are probed.
func builtDartSdk(checkout string) string {
	for _, rel := range []string{
		"out/ReleaseX64/dart-sdk",
		"out/ReleaseARM64/dart-sdk",
		"xcodebuild/ReleaseX64/dart-sdk",
		"xcodebuild/ReleaseARM64/dart-sdk",
	} {
		candidate := filepath.Join(checkout, filepath.FromSlash(rel))
		if fspath.ExistsDir(candidate) {
			return candidate
		}
	}
	return ""
}
