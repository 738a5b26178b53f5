package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads settings from the workspace config file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Settings, error)
}

type loader struct {
	workspaceDir string
}

// NewLoader creates a new settings loader for the given workspace directory.
func NewLoader(workspaceDir string) Loader {
	return &loader{
		workspaceDir: workspaceDir,
	}
}

// Load loads settings with the following priority (highest to lowest):
// 1. Environment variables (MOONLC_*), including a workspace .env file
// 2. Config file (.moonlc/config.yml or .moonlc/config.yaml)
// 3. Default values
func (l *loader) Load() (*Settings, error) {
	// Existing process environment wins over .env entries
	if err := loadDotEnv(filepath.Join(l.workspaceDir, ".env")); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(l.workspaceDir, ".moonlc"))

	// MOONLC_FILEPATH_MOONBIT_FOLDER, MOONLC_LANGEXT_MOONBIT, ...
	v.SetEnvPrefix("MOONLC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("filePath." + Notation + ".folder")
	v.BindEnv("filePath." + DefaultNotationKey + ".folder")
	v.BindEnv("langExt." + Notation)
	v.BindEnv("build.command")
	v.BindEnv("build.timeout")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - defaults + env vars apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := Default()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return settings, nil
}

// setDefaults configures viper with default values.
// Folder and extension keys deliberately have none so their absence stays observable.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("build.command", defaults.Build.Command)
	v.SetDefault("build.timeout", defaults.Build.Timeout)
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadSettings is a convenience function that loads settings for the current
// working directory.
func LoadSettings() (*Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}
