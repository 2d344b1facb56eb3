// SPDX-License-Identifier: MPL-2.0

// Package launch resolves debug-launch configurations for the external debug
// adapter: relative paths made absolute, discovered SDK paths injected, and
// source files categorized as SDK, pub-cache, or local code.
package launch

// Config is a debug-launch configuration. Fields mirror what the external
// debug adapter consumes; the resolver's job is to fill the blanks, never to
// run anything itself.
type Config struct {
	// Name labels the configuration in user-facing output.
	Name string `json:"name,omitempty"`
	// Program is the entry-point script. Relative paths resolve against CWD.
	Program string `json:"program"`
	// CWD is the working directory for the launched program. Defaults to the
	// program's package root.
	CWD string `json:"cwd,omitempty"`
	// Args are passed to the program itself.
	Args []string `json:"args,omitempty"`
	// ToolArgs are passed to the dart/flutter tool in front of the program.
	ToolArgs []string `json:"toolArgs,omitempty"`
	// VMAdditionalArgs are passed to the Dart VM.
	VMAdditionalArgs []string `json:"vmAdditionalArgs,omitempty"`
	// DeviceID selects the Flutter target device.
	DeviceID string `json:"deviceId,omitempty"`
	// Env is merged into the launched process environment.
	Env map[string]string `json:"env,omitempty"`

	// DartSdkPath and FlutterSdkPath are injected from discovery when empty.
	DartSdkPath    string `json:"dartSdkPath,omitempty"`
	FlutterSdkPath string `json:"flutterSdkPath,omitempty"`

	// DebugSdkLibraries and DebugExternalPackageLibraries control whether
	// the debugger steps into SDK and pub-cache sources. Nil means "use the
	// resolver default" (both off).
	DebugSdkLibraries             *bool `json:"debugSdkLibraries,omitempty"`
	DebugExternalPackageLibraries *bool `json:"debugExternalPackageLibraries,omitempty"`
}

// Origin classifies where a source file lives, which decides whether the
// debugger steps into it.
type Origin string

const (
	// OriginSDK is code inside a discovered Dart or Flutter SDK root.
	OriginSDK Origin = "sdk"
	// OriginPub is code inside the pub package cache.
	OriginPub Origin = "pub"
	// OriginLocal is the user's own code.
	OriginLocal Origin = "local"
)
