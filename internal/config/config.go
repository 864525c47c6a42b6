package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

// Config is the run configuration of one authoring invocation.
type Config struct {
	Jumppad          bool   `yaml:"jumppad"`
	AllGPRM          bool   `yaml:"allgprm"`
	LogLevel         string `yaml:"log_level"`          // debug, info, warn, error
	DefaultFrameRate string `yaml:"default_frame_rate"` // ntsc or pal

	// Filled in by Validate.
	Registers dvdauthor.RegisterMode `yaml:"-"`
	FrameRate dvdauthor.FrameRate    `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	_ = Validate(cfg)
	return cfg
}

// Load reads and parses a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
