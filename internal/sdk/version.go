// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/blang/semver/v4"
)

// ReadVersion reads <root>/version and returns its canonical semver form.
// Both Dart and Flutter SDK roots carry this file. An unreadable or
// unparseable file yields "" rather than an error: a missing version never
// fails a search.
func ReadVersion(root string) string {
	if root == "" {
		return ""
	}

	data, err := os.ReadFile(filepath.Join(root, "version"))
	if err != nil {
		return ""
	}

	raw := strings.TrimSpace(string(data))
	v, err := semver.ParseTolerant(raw)
	if err != nil {
		return ""
	}
	return v.String()
}
