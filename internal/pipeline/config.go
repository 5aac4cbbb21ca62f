package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which passes run and in what order.
type Config struct {
	Passes  []string `yaml:"passes"`
	Verbose bool     `yaml:"verbose"`
}

// ParseConfig decodes a yaml config. Unknown keys are errors, so a
// typoed pass list fails loudly instead of silently running defaults.
func ParseConfig(data []byte) (*Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parsing pipeline config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a yaml config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline config: %w", err)
	}
	return ParseConfig(data)
}
