package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the settings that can be read from a YAML file. Fields missing
// from the file keep their defaults.
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Count     bool   `yaml:"count"`
	Distinct  bool   `yaml:"distinct"`
	Separator string `yaml:"separator"`
}

func defaultConfig() Config {
	return Config{Algorithm: "std", Separator: " "}
}

// loadConfig parses a YAML config file on top of the defaults.
func loadConfig(file string) (Config, error) {
	conf := defaultConfig()

	data, err := os.ReadFile(file)
	if err != nil {
		return conf, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &conf); err != nil {
		return conf, fmt.Errorf("parsing config %q: %w", file, err)
	}
	return conf, nil
}
