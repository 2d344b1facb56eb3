// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the dartscout configuration.
//
// Configuration lives in a CUE file validated against an embedded schema and
// merged into Viper, so defaults, file values, and overrides resolve once at
// load time into a strongly-typed Config. User-facing SDK paths are stored
// unexpanded; the locator expands ~ and environment variables at search time.
package config
