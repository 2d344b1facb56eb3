// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions names the explicit inputs of one configuration load.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider performs uncached configuration loads. The inspection commands
// read through it so edits on disk are visible immediately; the process-wide
// cache behind Load and Get is never consulted or touched.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a file-backed configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads and validates configuration from the source opts selects.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
