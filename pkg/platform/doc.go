// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes platform-specific concerns of the Dart/Flutter
// toolchain: launcher filenames (dart vs. dart.exe, flutter vs. flutter.bat),
// the snap packaging convention on Linux, and the pub cache location.
package platform
