// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"context"
	"path/filepath"
	"runtime"

	"dartscout-cli/internal/config"
	"dartscout-cli/pkg/fspath"
	"dartscout-cli/pkg/platform"

	"github.com/charmbracelet/log"
)

// Locator composes ordered candidate-path lists for Dart and Flutter and
// runs the executable search over them. Construct one per workspace scan;
// it holds no mutable state beyond its inputs.
type Locator struct {
	cfg       *config.Config
	overrides Overrides
	initShim  ShimInitFunc
	logger    *log.Logger
}

// LocatorOption customizes a Locator.
type LocatorOption func(*Locator)

// WithShimInit replaces the snap initialization function. Tests use this to
// avoid spawning processes.
func WithShimInit(fn ShimInitFunc) LocatorOption {
	return func(l *Locator) {
		l.initShim = fn
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *log.Logger) LocatorOption {
	return func(l *Locator) {
		l.logger = logger
	}
}

// NewLocator creates a Locator for one discovery run.
func NewLocator(cfg *config.Config, overrides Overrides, opts ...LocatorOption) *Locator {
	l := &Locator{
		cfg:       cfg,
		overrides: overrides,
		initShim:  InitSnapFlutter,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate runs full discovery: Flutter first, so the Dart search can fall
// back to the SDK cached inside a located Flutter install. The raw search
// results are returned alongside the aggregate so callers can report the
// candidate lists of a failed search.
func (l *Locator) Locate(ctx context.Context) (Sdks, Searches) {
	flutterRes, flutterInitErr := l.LocateFlutter(ctx)

	var sdks Sdks
	if flutterRes.Found() {
		sdks.Flutter = flutterRes.SDKPath
		sdks.FlutterVersion = ReadVersion(sdks.Flutter)
	}

	dartRes := l.LocateDart(sdks.Flutter)
	if dartRes.Found() {
		sdks.Dart = dartRes.SDKPath
		sdks.DartVersion = ReadVersion(sdks.Dart)
		if sdks.Flutter != "" {
			cached, err := filepath.EvalSymlinks(flutterDartSdk(sdks.Flutter))
			if err == nil && cached == sdks.Dart {
				sdks.DartSdkIsFromFlutter = true
			} else if sdks.Dart == flutterDartSdk(sdks.Flutter) {
				sdks.DartSdkIsFromFlutter = true
			}
		}
	}

	return sdks, Searches{Dart: dartRes, Flutter: flutterRes, FlutterInitErr: flutterInitErr}
}

// LocateDart searches for a standalone Dart SDK. flutterRoot, when known,
// contributes the bin/cache/dart-sdk candidate.
func (l *Locator) LocateDart(flutterRoot string) SearchResult {
	candidates := l.dartCandidates(flutterRoot)
	l.logger.Debug("searching for Dart SDK", "candidates", len(candidates))

	res := SearchPaths(candidates, platform.DartExecutable(), HasDartSdk)
	if res.Found() {
		l.logger.Debug("found Dart SDK", "path", res.SDKPath)
	}
	return res
}

// LocateFlutter searches for a Flutter SDK. When the top result resolves to
// the snap shim, the lazy initializer runs (an external, potentially
// long-running process) and the search is repeated once; an init failure
// degrades to a not-found result carrying the failure cause.
func (l *Locator) LocateFlutter(ctx context.Context) (SearchResult, error) {
	candidates := l.flutterCandidates()
	l.logger.Debug("searching for Flutter SDK", "candidates", len(candidates))

	res := SearchPaths(candidates, platform.FlutterExecutable(), HasFlutterSdk)
	if IsSnapShim(res.SDKPath) {
		l.logger.Info("flutter snap has not been initialized, running initializer")
		if err := l.initShim(ctx); err != nil {
			l.logger.Warn("flutter snap initialization failed", "err", err)
			res.SDKPath = ""
			return res, err
		}

		res = SearchPaths(candidates, platform.FlutterExecutable(), HasFlutterSdk)
		if IsSnapShim(res.SDKPath) {
			// Initializer reported success but the shim still resolves to
			// itself; treat as not-found, the doctor flow takes it from here.
			res.SDKPath = ""
		}
	}

	if res.Found() {
		l.logger.Debug("found Flutter SDK", "path", res.SDKPath)
	}
	return res, nil
}

// dartCandidates builds the ordered Dart candidate list, highest priority
// first. PATH entries come last so a real install is never shadowed by an
// unrelated PATH entry.
func (l *Locator) dartCandidates(flutterRoot string) []string {
	var candidates []string

	candidates = append(candidates, l.overrides.DartSdkHome)
	candidates = append(candidates, string(l.cfg.Dart.SdkPath))
	candidates = append(candidates, l.cfg.SearchPaths...)

	if l.overrides.FuchsiaRoot != "" {
		candidates = append(candidates,
			filepath.Join(l.overrides.FuchsiaRoot, "topaz", "tools", "prebuilt-dart-sdk", fuchsiaPrebuiltPlatform()),
			filepath.Join(l.overrides.FuchsiaRoot, "third_party", "dart", "tools", "sdks", "dart-sdk"),
		)
	}

	if flutterRoot != "" {
		candidates = append(candidates, flutterDartSdk(flutterRoot))
	}

	if home := fspath.Home(); home != "" {
		candidates = append(candidates, filepath.Join(home, "dart-sdk"))
	}
	candidates = append(candidates, "/usr/lib/dart")

	return append(candidates, platform.PathEntries()...)
}

// flutterCandidates builds the ordered Flutter candidate list.
func (l *Locator) flutterCandidates() []string {
	var candidates []string

	candidates = append(candidates, l.overrides.FlutterSdkHome)
	candidates = append(candidates, string(l.cfg.Flutter.SdkPath))
	candidates = append(candidates, l.cfg.SearchPaths...)

	if l.overrides.FuchsiaRoot != "" {
		candidates = append(candidates, filepath.Join(l.overrides.FuchsiaRoot, "lib", "flutter"))
	}

	if derived := FlutterSdkFromPackageConfig(l.overrides.FlutterProject); derived != "" {
		candidates = append(candidates, derived)
	}

	if home := fspath.Home(); home != "" {
		candidates = append(candidates,
			filepath.Join(home, "flutter"),
			filepath.Join(home, filepath.FromSlash(platform.SnapFlutterSDK)),
		)
	}
	candidates = append(candidates, "/opt/flutter")

	return append(candidates, platform.PathEntries()...)
}

// flutterDartSdk is the Dart SDK the Flutter tool caches inside its own root.
func flutterDartSdk(flutterRoot string) string {
	return filepath.Join(flutterRoot, "bin", "cache", "dart-sdk")
}

// fuchsiaPrebuiltPlatform names the prebuilt SDK directory for this host in
// a Fuchsia checkout.
func fuchsiaPrebuiltPlatform() string {
	switch runtime.GOOS {
	case platform.Darwin:
		return "mac-x64"
	case platform.Windows:
		return "windows-x64"
	default:
		return "linux-x64"
	}
}
