package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dvdauthor.yaml")
	data := []byte("jumppad: true\nlog_level: warn\ndefault_frame_rate: PAL\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Registers != dvdauthor.RegistersJumppad {
		t.Fatalf("Registers = %v, want %v", cfg.Registers, dvdauthor.RegistersJumppad)
	}
	if cfg.FrameRate != dvdauthor.FrameRatePAL {
		t.Fatalf("FrameRate = %v, want %v", cfg.FrameRate, dvdauthor.FrameRatePAL)
	}
	if cfg.Level() != log.WarnLevel {
		t.Fatalf("Level = %v, want %v", cfg.Level(), log.WarnLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseRegisterConflict(t *testing.T) {
	_, err := Parse([]byte("jumppad: true\nallgprm: true\n"))
	if !errors.Is(err, dvdauthor.ErrRegisterModeConflict) {
		t.Fatalf("err = %v, want %v", err, dvdauthor.ErrRegisterModeConflict)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []string{
		"log_level: loud\n",
		"default_frame_rate: secam\n",
		"jumppad: [\n",
	}
	for _, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", data)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Registers != dvdauthor.RegistersDefault {
		t.Fatalf("Registers = %v, want default", cfg.Registers)
	}
	if cfg.FrameRate != dvdauthor.FrameRateNTSC {
		t.Fatalf("FrameRate = %v, want %v", cfg.FrameRate, dvdauthor.FrameRateNTSC)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}
