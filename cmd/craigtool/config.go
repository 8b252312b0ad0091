// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// toolConfig is the on-disk shape of craigtool's optional --config file.
// Flags passed on the command line override the corresponding field.
type toolConfig struct {
	System      string `yaml:"system"`
	Alternative bool   `yaml:"alternative"`
	LogLevel    string `yaml:"logLevel"`
}

func loadConfig(path string) (toolConfig, error) {
	cfg := toolConfig{System: "mcmillan", LogLevel: "info"}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
