package main

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration of the runner.
type Config struct {
	Paths     []string `yaml:"paths"`     // Image search paths.
	Extension string   `yaml:"extension"` // Image file extension.
	Watch     string   `yaml:"watch"`     // Watch expression.
	Verbose   bool     `yaml:"verbose"`   // Verbose mode.
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(name string) (cfg *Config, err error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return
	}

	cfg = &Config{}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = nil
		return
	}

	return
}

// SplitPaths splits a comma separated path list, dropping empty entries.
func SplitPaths(list string) (paths []string) {
	for _, path := range strings.Split(list, ",") {
		path = strings.TrimSpace(path)
		if len(path) != 0 {
			paths = append(paths, path)
		}
	}

	return
}
