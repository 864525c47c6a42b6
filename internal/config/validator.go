package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

// Validate checks the configuration and fills in the derived fields.
func Validate(cfg *Config) error {
	mode, err := dvdauthor.ResolveRegisterMode(cfg.Jumppad, cfg.AllGPRM)
	if err != nil {
		return err
	}
	cfg.Registers = mode

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	switch strings.ToLower(cfg.DefaultFrameRate) {
	case "", "ntsc":
		cfg.FrameRate = dvdauthor.FrameRateNTSC
	case "pal":
		cfg.FrameRate = dvdauthor.FrameRatePAL
	default:
		return fmt.Errorf("default_frame_rate must be ntsc or pal, got %q", cfg.DefaultFrameRate)
	}

	return nil
}

// Level is the parsed log level. Validate must have succeeded.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
