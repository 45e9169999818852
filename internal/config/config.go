// Package config loads process configuration from the environment.
//
// Values here are defaults; CLI flags override them when set. A .env
// file in the working directory is honored for local development.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-settable paths and logging options.
type Config struct {
	RegistryPath string `envconfig:"TEAM_REGISTRY_PATH" default:"config/team_registry.json"`
	MasterPath   string `envconfig:"TEAM_MASTER_PATH" default:"config/team_ids_mapping.json"`
	MappingsDir  string `envconfig:"TEAM_MAPPINGS_DIR" default:"config/mappings"`
	AliasesPath  string `envconfig:"TEAM_ALIASES_PATH" default:""`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env (when present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
