package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	flag "github.com/spf13/pflag"
)

// Config holds the application settings. Precedence, lowest to highest:
// built-in defaults, yaml config file, VOKAB_* environment variables,
// command-line flags.
type Config struct {
	DBPath          string        `koanf:"db_path" validate:"omitempty"`
	MaxSessionSize  int           `koanf:"max_session_size" validate:"min=1,max=100"`
	RequeueOffset   int           `koanf:"requeue_offset" validate:"min=1,max=50"`
	PollInterval    time.Duration `koanf:"poll_interval" validate:"min=100ms,max=1m"`
	DefaultLanguage string        `koanf:"default_language" validate:"required,max=60"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxSessionSize:  10,
		RequeueOffset:   6,
		PollInterval:    time.Second,
		DefaultLanguage: "German",
	}
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/vokab/config.yaml, falling back to
// ~/.config/vokab/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vokab", "config.yaml"), nil
}

// Load builds the effective configuration. path and flags may be empty;
// a missing config file is fine, a malformed one is not.
func Load(path string, flags *flag.FlagSet) (Config, error) {
	k := koanf.New(".")

	def := Default()
	defaults := map[string]any{
		"db_path":          def.DBPath,
		"max_session_size": def.MaxSessionSize,
		"requeue_offset":   def.RequeueOffset,
		"poll_interval":    def.PollInterval.String(),
		"default_language": def.DefaultLanguage,
	}
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return Config{}, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	// VOKAB_MAX_SESSION_SIZE -> max_session_size
	e := env.Provider("VOKAB_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "VOKAB_"))
	})
	if err := k.Load(e, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
