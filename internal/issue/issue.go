// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	DartSdkNotFoundId Id = iota + 1
	FlutterSdkNotFoundId
	SdkValidationFailedId
	SnapInitFailedId
	WorkspaceScanFailedId
	ConfigLoadFailedId
	LaunchFileNotFoundId
	LaunchParseErrorId
	ProgramNotFoundId
	LogFileUnavailableId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	dartSdkNotFoundIssue = &Issue{
		id: DartSdkNotFoundId,
		mdMsg: `
# No Dart SDK found!

We searched every known location but none of them contained a usable Dart SDK
(a root whose bin/ holds the dart launcher and the analysis-server snapshot).

## Search locations (in order of precedence):
1. Workspace overrides (Fuchsia/Bazel roots)
2. dart.sdk_path in your config file
3. Configured extra search paths
4. The Dart SDK cached inside a located Flutter SDK
5. Well-known install locations (~/dart-sdk, /usr/lib/dart)
6. Your PATH entries

## Things you can try:
- Run the interactive recovery flow:
~~~
$ dartscout doctor
~~~

- Point the config at an install directly:
~~~cue
dart: {sdk_path: "/path/to/dart-sdk"}
~~~

- Install the SDK from https://dart.dev/get-dart`,
		extLinks: []HttpLink{"https://dart.dev/get-dart"},
	}

	flutterSdkNotFoundIssue = &Issue{
		id: FlutterSdkNotFoundId,
		mdMsg: `
# No Flutter SDK found!

We could not find a directory whose bin/ contains the flutter launcher.

## Things you can try:
- Run the interactive recovery flow:
~~~
$ dartscout doctor
~~~

- Point the config at an install directly:
~~~cue
flutter: {sdk_path: "/path/to/flutter"}
~~~

- Install Flutter from https://docs.flutter.dev/get-started/install

On Linux, a snap install that has never been run counts as "not found" until
its first launch materializes the SDK; dartscout triggers that automatically
when it recognizes the snap shim.`,
		extLinks: []HttpLink{"https://docs.flutter.dev/get-started/install"},
	}

	sdkValidationFailedIssue = &Issue{
		id: SdkValidationFailedId,
		mdMsg: `
# That folder is not a complete SDK!

The selected folder exists but does not pass SDK validation.

## What validation requires:
- **Dart**: bin/dart (or dart.exe) AND bin/snapshots/analysis_server.dart.snapshot
- **Flutter**: bin/flutter (or flutter.bat)

## Things you can try:
- Select the SDK *root*, not its bin/ directory or a parent
- For Flutter, make sure the checkout has run once so bin/cache is populated
- Re-run the picker and choose a different folder`,
	}

	snapInitFailedIssue = &Issue{
		id: SnapInitFailedId,
		mdMsg: `
# Flutter snap initialization failed!

The flutter binary on this machine is the snap shim, and running its lazy
initializer did not produce a real SDK.

## Things you can try:
- Run the initializer yourself and watch its output:
~~~
$ flutter --version
~~~

- Check connectivity; the first run downloads the SDK
- Reinstall the snap: ` + "`sudo snap remove flutter && sudo snap install flutter --classic`",
	}

	workspaceScanFailedIssue = &Issue{
		id: WorkspaceScanFailedId,
		mdMsg: `
# Workspace scan failed!

A project folder could not be scanned at all (not a readable directory).

## Things you can try:
- Check the folder paths passed on the command line
- Verify read permission on each folder
- Re-run with --verbose and inspect the log:
~~~
$ dartscout --verbose workspace <folders...>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file exists but could not be loaded.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Invalid values for known fields

## Things you can try:
- Check the error message above for the specific line/column
- Show the effective configuration:
~~~
$ dartscout config show
~~~

- Regenerate a default config:
~~~
$ dartscout config init
~~~`,
	}

	launchFileNotFoundIssue = &Issue{
		id: LaunchFileNotFoundId,
		mdMsg: `
# Launch definition not found!

dartscout launch was given a definition file that does not exist.

## Things you can try:
- Check the path passed via --file
- Create one next to your project:
~~~cue
program: "bin/main.dart"
device_id: "linux"
~~~`,
	}

	launchParseErrorIssue = &Issue{
		id: LaunchParseErrorId,
		mdMsg: `
# Failed to parse launch definition!

The launch file contains syntax errors or invalid fields.

## Common issues:
- Invalid CUE syntax
- Unknown field names
- program set to something other than a string

## Example of a valid launch definition:
~~~cue
program: "bin/main.dart"
cwd: "."
device_id: "macos"
tool_args: ["--no-pub"]
vm_additional_args: ["--enable-asserts"]
~~~`,
	}

	programNotFoundIssue = &Issue{
		id: ProgramNotFoundId,
		mdMsg: `
# Program not found!

The launch definition points at an entry script that does not exist.

## Things you can try:
- Check the program path (it is resolved against cwd, then the project folder)
- Make sure the file is committed / generated before launching`,
	}

	logFileUnavailableIssue = &Issue{
		id: LogFileUnavailableId,
		mdMsg: `
# No log file available!

The session log could not be opened. Logging to file may be disabled.

## Things you can try:
- Re-run the failing command with --verbose
- Check that the config directory is writable`,
	}

	issues = map[Id]*Issue{
		dartSdkNotFoundIssue.Id():     dartSdkNotFoundIssue,
		flutterSdkNotFoundIssue.Id():  flutterSdkNotFoundIssue,
		sdkValidationFailedIssue.Id(): sdkValidationFailedIssue,
		snapInitFailedIssue.Id():      snapInitFailedIssue,
		workspaceScanFailedIssue.Id(): workspaceScanFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		launchFileNotFoundIssue.Id():  launchFileNotFoundIssue,
		launchParseErrorIssue.Id():    launchParseErrorIssue,
		programNotFoundIssue.Id():     programNotFoundIssue,
		logFileUnavailableIssue.Id():  logFileUnavailableIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
