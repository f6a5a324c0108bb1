package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-attrenum/codegen"
	"gopkg.in/yaml.v3"
)

func loadConfig(path string) (codegen.Config, error) {
	var cfg codegen.Config
	if path == "" {
		return cfg, fmt.Errorf("config path required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
