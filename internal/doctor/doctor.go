// SPDX-License-Identifier: MPL-2.0

// Package doctor implements the recovery flow that runs when SDK discovery
// comes up empty: a prompt loop offering to locate an SDK manually, open the
// download page, or show the log. The loop is bounded by user gestures only;
// there is no automatic retry.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os"

	"dartscout-cli/internal/config"
	"dartscout-cli/internal/issue"
	"dartscout-cli/internal/sdk"
	"dartscout-cli/internal/tui"
	"dartscout-cli/pkg/fspath"
	"dartscout-cli/pkg/platform"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
)

// State names one step of the recovery flow.
type State string

const (
	// StatePrompting shows the action menu.
	StatePrompting State = "prompting"
	// StateLocatingViaUser lets the user point at an SDK directory.
	StateLocatingViaUser State = "locating"
	// StateDownloading opens the SDK download page.
	StateDownloading State = "downloading"
	// StateShowingLog displays the session log.
	StateShowingLog State = "showing-log"
	// StateDone terminates the flow.
	StateDone State = "done"
)

// Kind selects which toolchain the flow recovers.
type Kind string

const (
	// KindDart recovers a missing Dart SDK.
	KindDart Kind = "dart"
	// KindFlutter recovers a missing Flutter SDK.
	KindFlutter Kind = "flutter"
)

// Menu actions, in display order.
const (
	actionLocate   = "Locate SDK"
	actionTypePath = "Type SDK path"
	actionDownload = "Open download page"
	actionShowLog  = "Show log"
)

func (k Kind) executable() string {
	if k == KindFlutter {
		return platform.FlutterExecutable()
	}
	return platform.DartExecutable()
}

func (k Kind) postFilter() sdk.PostFilter {
	if k == KindFlutter {
		return sdk.HasFlutterSdk
	}
	return sdk.HasDartSdk
}

func (k Kind) downloadURL() string {
	if k == KindFlutter {
		return "https://docs.flutter.dev/get-started/install"
	}
	return "https://dart.dev/get-dart"
}

// Doctor drives one recovery flow. All side-effecting collaborators are
// injectable so the state machine tests without a terminal, a browser, or a
// real config file.
type Doctor struct {
	cfg    *config.Config
	tuiCfg tui.Config
	logger *log.Logger

	choose     func(title string, options []string) (string, error)
	pickDir    func(title, startDir string) (string, error)
	inputPath  func(title string) (string, error)
	confirm    func(title string) (bool, error)
	openURL    func(url string) error
	showLog    func() error
	showIssue  func(id issue.Id)
	saveConfig func(*config.Config) error
}

// Option customizes a Doctor.
type Option func(*Doctor)

// WithPrompts replaces the interactive prompt functions.
func WithPrompts(
	choose func(string, []string) (string, error),
	pickDir func(string, string) (string, error),
	confirm func(string) (bool, error),
) Option {
	return func(d *Doctor) {
		d.choose = choose
		d.pickDir = pickDir
		d.confirm = confirm
	}
}

// WithPathInput replaces the free-text path prompt.
func WithPathInput(fn func(string) (string, error)) Option {
	return func(d *Doctor) {
		d.inputPath = fn
	}
}

// WithShowIssue replaces the catalog-issue display hook.
func WithShowIssue(fn func(issue.Id)) Option {
	return func(d *Doctor) {
		d.showIssue = fn
	}
}

// WithOpenURL replaces the browser opener.
func WithOpenURL(fn func(string) error) Option {
	return func(d *Doctor) {
		d.openURL = fn
	}
}

// WithShowLog replaces the log display action.
func WithShowLog(fn func() error) Option {
	return func(d *Doctor) {
		d.showLog = fn
	}
}

// WithSaveConfig replaces the config persistence hook.
func WithSaveConfig(fn func(*config.Config) error) Option {
	return func(d *Doctor) {
		d.saveConfig = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Doctor) {
		d.logger = logger
	}
}

// New creates a Doctor over the given user configuration.
func New(cfg *config.Config, opts ...Option) *Doctor {
	d := &Doctor{
		cfg:        cfg,
		tuiCfg:     tui.DefaultConfig(),
		logger:     log.Default(),
		openURL:    browser.OpenURL,
		saveConfig: config.Save,
	}
	d.choose = func(title string, options []string) (string, error) {
		return tui.Choose(title, options, d.tuiCfg)
	}
	d.pickDir = func(title, startDir string) (string, error) {
		return tui.PickDirectory(title, startDir, d.tuiCfg)
	}
	d.inputPath = func(title string) (string, error) {
		return tui.Input(title, fspath.Home(), func(s string) error {
			if !fspath.ExistsDir(fspath.Expand(s)) {
				return fmt.Errorf("not a directory")
			}
			return nil
		}, d.tuiCfg)
	}
	d.confirm = func(title string) (bool, error) {
		return tui.Confirm(title, d.tuiCfg)
	}
	d.showLog = d.printLogFile
	d.showIssue = func(id issue.Id) {
		rendered, err := issue.Get(id).Render("dark")
		if err != nil {
			return
		}
		fmt.Fprint(os.Stderr, rendered)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the recovery flow for kind after a failed search. It returns
// the search result the flow ended with: the failed input when the user
// dismissed or took a terminal action, or a fresh successful result when a
// user-located SDK validated and discovery was re-run.
func (d *Doctor) Run(ctx context.Context, kind Kind, failed sdk.SearchResult) (sdk.SearchResult, error) {
	message := fmt.Sprintf("No %s SDK found (%d locations searched). What would you like to do?",
		kind, len(failed.CandidatePaths))

	state := StatePrompting
	result := failed
	typePath := false

	for state != StateDone {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		switch state {
		case StatePrompting:
			action, err := d.choose(message, []string{actionLocate, actionTypePath, actionDownload, actionShowLog})
			if err != nil {
				// Dismissal ends the flow; it is not an error.
				d.logger.Debug("recovery prompt dismissed")
				return result, nil
			}
			switch action {
			case actionLocate:
				typePath = false
				state = StateLocatingViaUser
			case actionTypePath:
				typePath = true
				state = StateLocatingViaUser
			case actionDownload:
				state = StateDownloading
			case actionShowLog:
				state = StateShowingLog
			default:
				state = StateDone
			}

		case StateLocatingViaUser:
			located, ok, err := d.locateViaUser(kind, typePath)
			if err != nil {
				return result, nil // dismissal of the picker ends the flow
			}
			if !ok {
				// Validation failed; loop with a clarified message. Each
				// iteration requires a new user gesture.
				d.showIssue(issue.SdkValidationFailedId)
				message = fmt.Sprintf("That folder does not contain a valid %s SDK. What would you like to do?", kind)
				state = StatePrompting
				continue
			}
			result = located
			state = StateDone

		case StateDownloading:
			if err := d.openURL(kind.downloadURL()); err != nil {
				d.logger.Warn("could not open download page", "url", kind.downloadURL(), "err", err)
				fmt.Fprintf(os.Stderr, "Download the %s SDK from %s\n", kind, kind.downloadURL())
			}
			d.markDownloadOffered()
			state = StateDone

		case StateShowingLog:
			if err := d.showLog(); err != nil {
				d.logger.Warn("could not show log", "err", err)
			}
			state = StateDone
		}
	}

	return result, nil
}

// locateViaUser runs one Locate iteration: obtain a directory from the user
// (picker or typed path), validate it with the kind's post-filter, persist it
// on success and re-run the search over the chosen path so the returned
// result reflects stable filesystem state.
func (d *Doctor) locateViaUser(kind Kind, typePath bool) (sdk.SearchResult, bool, error) {
	var dir string
	var err error
	if typePath {
		dir, err = d.inputPath(fmt.Sprintf("Enter your %s SDK folder", kind))
		dir = fspath.Expand(dir)
	} else {
		dir, err = d.pickDir(fmt.Sprintf("Select your %s SDK folder", kind), fspath.Home())
	}
	if err != nil {
		return sdk.SearchResult{}, false, err
	}

	res := sdk.SearchPaths([]string{dir}, kind.executable(), kind.postFilter())
	if !res.Found() {
		d.logger.Debug("user-selected folder failed validation", "dir", dir, "kind", kind)
		return sdk.SearchResult{}, false, nil
	}

	switch kind {
	case KindFlutter:
		d.cfg.Flutter.SdkPath = config.SDKDirPath(res.SDKPath)
	default:
		d.cfg.Dart.SdkPath = config.SDKDirPath(res.SDKPath)
	}
	if err := d.saveConfig(d.cfg); err != nil {
		d.logger.Warn("could not persist SDK path", "err", err)
	}

	if rerun, err := d.confirm(fmt.Sprintf("Use %s and re-run discovery now?", res.SDKPath)); err == nil && rerun {
		res = sdk.SearchPaths([]string{string(kindSdkPath(d.cfg, kind))}, kind.executable(), kind.postFilter())
	}

	return res, true, nil
}

// markDownloadOffered records the one-shot "already offered to download"
// flag. Persistence failures only log; the flag is a convenience.
func (d *Doctor) markDownloadOffered() {
	if d.cfg.Prompts.OfferedDownload {
		return
	}
	d.cfg.Prompts.OfferedDownload = true
	if err := d.saveConfig(d.cfg); err != nil {
		d.logger.Warn("could not persist prompt state", "err", err)
	}
}

func kindSdkPath(cfg *config.Config, kind Kind) config.SDKDirPath {
	if kind == KindFlutter {
		return cfg.Flutter.SdkPath
	}
	return cfg.Dart.SdkPath
}

// printLogFile copies the session log to stdout.
func (d *Doctor) printLogFile() error {
	path, err := config.LogFilePath(d.cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		d.showIssue(issue.LogFileUnavailableId)
		return issue.WrapWithContext(err, "open session log", path)
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}
