// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled reports that the user dismissed a prompt without answering.
var ErrCancelled = errors.New("prompt cancelled")

// Choose presents a single-select prompt over options and returns the chosen
// one. Dismissal (esc, ctrl-c) returns ErrCancelled.
func Choose(title string, options []string, cfg Config) (string, error) {
	var result string

	huhOpts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt, opt)
	}

	sel := huh.NewSelect[string]().
		Title(title).
		Options(huhOpts...).
		Value(&result)

	if err := runForm(cfg, sel); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return result, nil
}
