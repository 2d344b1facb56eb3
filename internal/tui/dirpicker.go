// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// PickDirectory presents a filesystem browser restricted to directories,
// starting at startDir. Dismissal returns ErrCancelled.
func PickDirectory(title, startDir string, cfg Config) (string, error) {
	var result string

	picker := huh.NewFilePicker().
		Title(title).
		CurrentDirectory(startDir).
		DirAllowed(true).
		FileAllowed(false).
		Value(&result)

	if err := runForm(cfg, picker); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return result, nil
}
