// SPDX-License-Identifier: MPL-2.0

// Package workspace classifies a set of project folders: which are Flutter
// projects, which are plain Dart, whether special roots (Git, Fuchsia, Bazel)
// enclose them, and which SDK overrides those roots contribute. The scan
// produces an immutable Context; downstream features read it to decide what
// to enable.
package workspace

import (
	"context"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/sdk"

	"github.com/charmbracelet/log"
)

// Classifier runs workspace scans. Construct one per scan configuration; the
// per-scan memoization lives in the scan itself, not the Classifier.
type Classifier struct {
	cfg         *config.Config
	logger      *log.Logger
	locatorOpts []sdk.LocatorOption
}

// ClassifierOption customizes a Classifier.
type ClassifierOption func(*Classifier)

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(logger *log.Logger) ClassifierOption {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// WithLocatorOptions forwards options to the SDK locator the scan runs.
func WithLocatorOptions(opts ...sdk.LocatorOption) ClassifierOption {
	return func(c *Classifier) {
		c.locatorOpts = append(c.locatorOpts, opts...)
	}
}

// NewClassifier creates a Classifier over the given user configuration.
func NewClassifier(cfg *config.Config, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		cfg:    cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify scans folders and returns the workspace Context, SDK discovery
// included. Filesystem errors during the scan classify as absence; Classify
// itself never fails.
func (c *Classifier) Classify(ctx context.Context, folders []string) *Context {
	scan := newScan()
	wctx := &Context{}

	for _, folder := range folders {
		folder = scan.normalize(folder)
		if folder == "" {
			continue
		}
		wctx.Folders = append(wctx.Folders, folder)
		c.classifyFolder(scan, wctx, folder)
	}

	c.resolveRoots(scan, wctx)

	locator := sdk.NewLocator(c.cfg, wctx.overridesFor(),
		append([]sdk.LocatorOption{sdk.WithLogger(c.logger)}, c.locatorOpts...)...)
	wctx.Sdks, wctx.Searches = locator.Locate(ctx)

	c.logger.Debug("workspace classified",
		"folders", len(wctx.Folders),
		"flutter", wctx.HasFlutterProjects,
		"web", wctx.HasWebProjects,
		"dart", wctx.HasStandardDartProjects,
		"fuchsia", wctx.FuchsiaRoot != "")

	return wctx
}

// classifyFolder inspects one folder and ORs its findings into wctx.
func (c *Classifier) classifyFolder(scan *scan, wctx *Context, folder string) {
	manifest := readPubspec(folder)

	switch {
	case manifest != nil && ReferencesFlutterSdk(manifest):
		wctx.HasFlutterProjects = true
		if wctx.FirstFlutterProject == "" {
			wctx.FirstFlutterProject = folder
		}
		if ReferencesWebPackages(manifest) {
			wctx.HasWebProjects = true
		}
	case manifest != nil && ReferencesWebPackages(manifest):
		wctx.HasWebProjects = true
	case hasCreateTrigger(folder):
		// Scaffolded as Flutter, template expansion still pending.
		wctx.HasFlutterProjects = true
		if wctx.FirstFlutterProject == "" {
			wctx.FirstFlutterProject = folder
		}
	case manifest != nil:
		wctx.HasStandardDartProjects = true
	default:
		// No manifest at all. Inside a Fuchsia tree that still counts as a
		// project folder, just not a Dart one.
		if _, ok := scan.root(folder, FuchsiaMarker, true); ok {
			wctx.HasFuchsiaNonDartProject = true
		}
	}
}

// resolveRoots fills the memoized special roots from the first folder that
// yields each, then merges the overrides the roots contribute.
func (c *Classifier) resolveRoots(scan *scan, wctx *Context) {
	for _, folder := range wctx.Folders {
		if wctx.GitRoot == "" {
			if root, ok := scan.root(folder, GitMarker, true); ok {
				wctx.GitRoot = root
			}
		}
		if wctx.FuchsiaRoot == "" {
			if root, ok := scan.root(folder, FuchsiaMarker, true); ok {
				wctx.FuchsiaRoot = root
			}
		}
		if wctx.BazelRoot == "" {
			if root, ok := scan.root(folder, BazelMarker, false); ok {
				wctx.BazelRoot = root
			}
		}
	}

	// The explicit Bazel pointer file outranks what an SDK-repo checkout
	// implies; both outrank nothing.
	if wctx.BazelRoot != "" {
		wctx.Config = mergeConfigs(wctx.Config, loadBazelConfig(wctx.BazelRoot))
	}
	if wctx.GitRoot != "" {
		wctx.Config = mergeConfigs(wctx.Config, sdkRepoOverrides(wctx.GitRoot))
	}
}

// mergeConfigs fills empty fields of base from next, first writer wins.
func mergeConfigs(base, next WorkspaceConfig) WorkspaceConfig {
	if base.DartSdkHome == "" {
		base.DartSdkHome = next.DartSdkHome
	}
	if base.FlutterSdkHome == "" {
		base.FlutterSdkHome = next.FlutterSdkHome
	}
	if len(base.FlutterToolArgs) == 0 {
		base.FlutterToolArgs = next.FlutterToolArgs
	}
	if base.Source == "" {
		base.Source = next.Source
	} else if next.Source != "" {
		base.Source += ", " + next.Source
	}
	return base
}
