// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// packageConfig mirrors the subset of .dart_tool/package_config.json that
// the locator needs: package names and their root URIs.
type packageConfig struct {
	Packages []struct {
		Name    string `json:"name"`
		RootURI string `json:"rootUri"`
	} `json:"packages"`
}

// FlutterSdkFromPackageConfig derives a Flutter SDK candidate from a
// project's package-resolution file. The flutter package lives at
// <sdk>/packages/flutter, so the SDK root is two levels above the resolved
// package directory. Any read, parse, or resolution failure yields "";
// package metadata is only ever a hint, never an error.
func FlutterSdkFromPackageConfig(projectDir string) string {
	if projectDir == "" {
		return ""
	}

	configPath := filepath.Join(projectDir, ".dart_tool", "package_config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return ""
	}

	var cfg packageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return ""
	}

	for _, pkg := range cfg.Packages {
		if pkg.Name != "flutter" {
			continue
		}
		pkgDir := resolveRootURI(filepath.Dir(configPath), pkg.RootURI)
		if pkgDir == "" {
			return ""
		}
		return filepath.Dir(filepath.Dir(pkgDir))
	}

	return ""
}

// resolveRootURI turns a package_config rootUri (file:// URL or a path
// relative to the .dart_tool directory) into an absolute directory path.
func resolveRootURI(baseDir, rootURI string) string {
	rootURI = strings.TrimSuffix(rootURI, "/")
	if rootURI == "" {
		return ""
	}

	if strings.HasPrefix(rootURI, "file://") {
		u, err := url.Parse(rootURI)
		if err != nil {
			return ""
		}
		return filepath.FromSlash(u.Path)
	}

	if filepath.IsAbs(rootURI) {
		return filepath.Clean(rootURI)
	}
	return filepath.Clean(filepath.Join(baseDir, filepath.FromSlash(rootURI)))
}
