package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the bridge configuration structure. Values come from a
// yaml file with environment-variable overrides.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// SSH contains settings for the SSH client the bridge spawns for
	// shorthand remotes.
	SSH struct {
		// Command is the SSH client binary to invoke
		Command string `env:"SSH_COMMAND" env-default:"ssh" yaml:"command"`
	} `yaml:"ssh"`

	// Subrepos contains the file names of the subrepository list files
	// inside a working copy
	Subrepos struct {
		// MapFile is the name of the assignment-format file (name = source)
		MapFile string `env:"SUBREPOS_MAP_FILE" env-default:".hgsub" yaml:"mapFile"`
		// StateFile is the name of the state-format file (node name)
		StateFile string `env:"SUBREPOS_STATE_FILE" env-default:".hgsubstate" yaml:"stateFile"`
	} `yaml:"subrepos"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing file is not an error; defaults and environment
// variables still apply.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		// only a missing file falls back to env-only configuration; a
		// present but unparseable file is an error
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if envErr := cleanenv.ReadEnv(&cfg); envErr != nil {
			return nil, fmt.Errorf("could not read config from env: %w", envErr)
		}
	}

	return &cfg, nil
}
