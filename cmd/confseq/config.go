// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// GridConfig is the YAML document read by `confseq grid --config`.
//
//	family: beta-binomial
//	v_opt: 100
//	g: 1
//	h: 1
//	v: [10, 100, 1000]
//	alpha: [0.05, 0.01]
//	workers: 4
//
// Missing keys keep the values of DefaultGridConfig.
type GridConfig struct {
	FamilySpec `yaml:",inline"`

	V       []float64 `yaml:"v" validate:"required,min=1,dive,gte=0"`
	Alpha   []float64 `yaml:"alpha" validate:"required,min=1,dive,gt=0,lt=1"`
	Workers int       `yaml:"workers" validate:"gte=0"`
}

// DefaultGridConfig evaluates the default family over a small log-spaced grid.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		FamilySpec: DefaultFamilySpec(),
		V:          []float64{1, 10, 100, 1000, 10000},
		Alpha:      []float64{0.05, 0.01},
	}
}

// LoadGridConfig reads and validates a GridConfig from path. Unknown keys are
// rejected.
func LoadGridConfig(path string) (GridConfig, error) {
	cfg := DefaultGridConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks struct tags with the shared validator.
func (c GridConfig) Validate() error {
	return configValidate.Struct(c)
}

// Validate checks struct tags with the shared validator.
func (s FamilySpec) Validate() error {
	return configValidate.Struct(s)
}
