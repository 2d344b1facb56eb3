// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// shimLockRetry is how often a waiting process re-checks the init lock.
const shimLockRetry = 500 * time.Millisecond

// ShimInitFunc runs the package manager's lazy initializer so a real SDK
// exists behind the shim. Injectable so tests never spawn processes.
type ShimInitFunc func(ctx context.Context) error

// InitSnapFlutter triggers the snap's lazy Flutter initialization by running
// the shim once. A file lock serializes concurrent dartscout invocations so
// the download is not started twice; whoever loses the race simply waits for
// the winner and then returns.
func InitSnapFlutter(ctx context.Context) error {
	lock := flock.New(filepath.Join(os.TempDir(), "dartscout-flutter-snap-init.lock"))

	locked, err := lock.TryLockContext(ctx, shimLockRetry)
	if err != nil {
		return fmt.Errorf("waiting for flutter snap init lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("flutter snap init lock unavailable")
	}
	defer func() { _ = lock.Unlock() }()

	// Running any flutter command makes the snap materialize the SDK. The
	// version query is the cheapest one that forces it.
	cmd := exec.CommandContext(ctx, snapShim, "--version")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("flutter snap initialization failed: %w: %s", err, string(out))
	}

	return nil
}
