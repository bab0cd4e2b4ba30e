// SPDX-License-Identifier: MIT
// Package: cognasim/internal/config
//
// loader.go — reads a YAML run file.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML run file over Default.
func Load(path string) (Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	var dto YAMLRun
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Run{}, invalidField(path, "yaml", err.Error())
	}
	return MapRun(path, dto, Default())
}
