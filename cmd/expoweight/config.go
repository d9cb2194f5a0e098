package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file. Numeric fields are pointers so
// "absent" and "zero" stay distinguishable; absent fields keep the built-in
// defaults and explicit command-line flags override everything.
//
// Example file:
//
//	function: gauss
//	arguments: []
//	y-optimum: 0.5
//	width: 0.2
type Config struct {
	Function  string   `yaml:"function"`
	Arguments []string `yaml:"arguments"`
	YOptimum  *float64 `yaml:"y-optimum"`
	Width     *float64 `yaml:"width"`
}

// LoadConfig reads and strictly decodes the YAML file at path; unknown keys
// are configuration mistakes and are rejected rather than ignored.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err = dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}
