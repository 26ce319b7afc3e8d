package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxSessionSize != 10 {
		t.Errorf("MaxSessionSize = %d, want 10", cfg.MaxSessionSize)
	}
	if cfg.RequeueOffset != 6 {
		t.Errorf("RequeueOffset = %d, want 6", cfg.RequeueOffset)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("PollInterval = %v, want 1s", cfg.PollInterval)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxSessionSize != 10 {
		t.Errorf("MaxSessionSize = %d, want default 10", cfg.MaxSessionSize)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "max_session_size: 20\nrequeue_offset: 3\ndefault_language: Spanish\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxSessionSize != 20 {
		t.Errorf("MaxSessionSize = %d, want 20", cfg.MaxSessionSize)
	}
	if cfg.RequeueOffset != 3 {
		t.Errorf("RequeueOffset = %d, want 3", cfg.RequeueOffset)
	}
	if cfg.DefaultLanguage != "Spanish" {
		t.Errorf("DefaultLanguage = %q, want Spanish", cfg.DefaultLanguage)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_session_size: 20\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VOKAB_MAX_SESSION_SIZE", "15")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxSessionSize != 15 {
		t.Errorf("MaxSessionSize = %d, want 15 (env wins)", cfg.MaxSessionSize)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("VOKAB_MAX_SESSION_SIZE", "15")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("max_session_size", 10, "")
	if err := fs.Parse([]string{"--max_session_size=25"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxSessionSize != 25 {
		t.Errorf("MaxSessionSize = %d, want 25 (flag wins)", cfg.MaxSessionSize)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("VOKAB_MAX_SESSION_SIZE", "0")
	if _, err := Load("", nil); err == nil {
		t.Error("expected validation error for zero session size")
	}
}
