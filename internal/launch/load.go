// SPDX-License-Identifier: MPL-2.0

package launch

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"dartscout-cli/internal/issue"
	"dartscout-cli/pkg/cueutil"
)

//go:embed launch_schema.cue
var launchSchema []byte

// Load reads a launch configuration from path. CUE files are validated
// against the embedded #Launch schema; plain JSON is accepted for adapters
// that emit it directly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load launch configuration").
			WithResource(path).
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("parse launch configuration").
				WithResource(path).
				WithSuggestion("Fix the JSON syntax error").
				Wrap(err).
				BuildError()
		}
		return &cfg, nil
	}

	res, err := cueutil.ParseAndDecode[Config](launchSchema, data, "#Launch",
		cueutil.WithFilename(path))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse launch configuration").
			WithResource(path).
			WithSuggestion("Compare the file against the #Launch schema").
			Wrap(err).
			BuildError()
	}
	return res.Value, nil
}
