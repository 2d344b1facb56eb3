// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/sdk"
	"dartscout-cli/internal/tui"
	"dartscout-cli/internal/workspace"
)

// newClassifier builds the workspace classifier the commands share. The snap
// initializer runs behind a spinner: the first invocation can download the
// whole Flutter SDK.
func newClassifier(cfg *config.Config) *workspace.Classifier {
	return workspace.NewClassifier(cfg, workspace.WithLocatorOptions(
		sdk.WithShimInit(func(ctx context.Context) error {
			return shimInitWithSpinner(ctx, tui.DefaultConfig(), sdk.InitSnapFlutter)
		}),
	))
}

// shimInitWithSpinner runs init while a spinner explains the wait. The
// spinner degrades to a plain printed title outside a terminal.
func shimInitWithSpinner(ctx context.Context, tuiCfg tui.Config, init sdk.ShimInitFunc) error {
	var initErr error
	if err := tui.WithSpinner(ctx, "Initializing Flutter via snap (this can take a while)...",
		tuiCfg, func() {
			initErr = init(ctx)
		}); err != nil {
		return err
	}
	return initErr
}
