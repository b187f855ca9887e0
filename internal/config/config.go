// Package config loads horex settings from a viper-managed YAML file
// in the user config directory, writing defaults on first run.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DataDir holds the persisted ledger.
	DataDir string
	// RosterSource is the master roster location: an http/https URL or
	// a local file path. Loaded once at startup.
	RosterSource string
	// Supervisor is the top-level authority allowed to register entries
	// for the whole roster.
	Supervisor string
	// Coordinators are the designated registering identities always
	// offered in the choice set.
	Coordinators []string
	// HTTPAddr is the listen address for the serve command.
	HTTPAddr string
}

// DefaultSupervisor is the designated unscoped authority identity.
const DefaultSupervisor = "SUPERVISOR GENERAL"

// defaultCoordinators is the fixed designated coordinator list offered
// even when the roster mentions none of them.
var defaultCoordinators = []string{
	DefaultSupervisor,
	"COORDINADOR TURNO DIA",
	"COORDINADOR TURNO NOCHE",
}

// Load reads the config file, creating it with defaults on first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Config{}, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetDefault("data_dir", filepath.Join(home, ".horex"))
	viper.SetDefault("roster_source", filepath.Join(home, ".horex", "trabajadores_maestro.csv"))
	viper.SetDefault("supervisor", DefaultSupervisor)
	viper.SetDefault("coordinators", defaultCoordinators)
	viper.SetDefault("http_addr", ":8712")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Config{}, fmt.Errorf("creating config directory: %w", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			log.Println("config file not found; creating one with default values")
			if err := viper.WriteConfigAs(path); err != nil {
				return Config{}, fmt.Errorf("creating config file: %w", err)
			}
		} else {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return Config{
		DataDir:      viper.GetString("data_dir"),
		RosterSource: viper.GetString("roster_source"),
		Supervisor:   viper.GetString("supervisor"),
		Coordinators: viper.GetStringSlice("coordinators"),
		HTTPAddr:     viper.GetString("http_addr"),
	}, nil
}

// configFilePath returns the per-user config file location, honouring
// XDG_CONFIG_HOME when set.
func configFilePath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(home, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(configHome, "horex", "horex.yml"), nil
}
