// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Confirm presents a yes/no prompt. Dismissal returns ErrCancelled.
func Confirm(title string, cfg Config) (bool, error) {
	var result bool

	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&result)

	if err := runForm(cfg, confirm); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, err
	}
	return result, nil
}
