package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"primobs/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// FormatText renders the demonstration as plain console text.
	FormatText = "text"
	// FormatJSON renders the demonstration as a single JSON document.
	FormatJSON = "json"
)

// Config represents the application configuration structure.
// Every field has a default, so the program runs without a config file.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	// Output controls how the demonstration is rendered.
	Output struct {
		// Format is either "text" or "json".
		Format string `env:"OUTPUT_FORMAT" env-default:"text" yaml:"format"`
	} `yaml:"output"`

	// Demo holds the identifiers used by the demonstration. Fixed defaults keep
	// the output identical across runs.
	Demo struct {
		// TenantID is the raw identifier wrapped into a domain.TenantID.
		TenantID string `env:"DEMO_TENANT_ID" env-default:"6f1c2a4e-0d3b-4c5a-9e8f-1a2b3c4d5e6f" yaml:"tenantId"`
		// PackID is the raw identifier wrapped into a domain.PackID.
		PackID string `env:"DEMO_PACK_ID" env-default:"0a9b8c7d-6e5f-4a3b-8c1d-2e3f4a5b6c7d" yaml:"packId"`
	} `yaml:"demo"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: values then come from the environment and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		return readEnv(&cfg)
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return readEnv(&cfg)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return validate(&cfg)
}

func readEnv(cfg *Config) (*Config, error) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return validate(cfg)
}

func validate(cfg *Config) (*Config, error) {
	switch cfg.Output.Format {
	case FormatText, FormatJSON:
		return cfg, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported output format %q", cfg.Output.Format)
	}
}
