// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Input presents a free-text prompt. validate may be nil; when set it runs on
// every submission and its error message is shown inline.
func Input(title, placeholder string, validate func(string) error, cfg Config) (string, error) {
	var result string

	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&result)
	if validate != nil {
		input = input.Validate(validate)
	}

	if err := runForm(cfg, input); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return result, nil
}
