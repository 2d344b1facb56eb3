// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"dartscout-cli/internal/issue"
)

// renderIssueToStderr prints a catalog issue's rendered markdown to stderr.
// Rendering failures are swallowed; the caller still returns the underlying
// error through the normal path.
func renderIssueToStderr(id issue.Id) {
	rendered, err := issue.Get(id).Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
