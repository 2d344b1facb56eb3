// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs action while showing a spinner with the given title. In
// accessible mode the spinner degrades to a plain printed title. The action's
// error is returned as-is; ctx cancellation stops the spinner.
func WithSpinner(ctx context.Context, title string, cfg Config, action func()) error {
	return spinner.New().
		Title(title).
		Context(ctx).
		Accessible(shouldUseAccessible(cfg)).
		Output(getOutputWriter(cfg)).
		Action(action).
		Run()
}
