package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "DEPCHECK"
	configType = "yaml"

	// Output formats.
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings that can come from .depcheck.yaml or DEPCHECK_* env vars.
type Config struct {
	Ignore           []string `mapstructure:"ignore"`
	Dirs             []string `mapstructure:"dirs"`
	Workers          int      `mapstructure:"workers"`
	RespectGitignore bool     `mapstructure:"respect_gitignore"`
	Format           string   `mapstructure:"format"`
	PackageManager   string   `mapstructure:"package_manager"`
}

// Load builds the configuration from defaults, the given file (if any) and the
// environment, in increasing order of precedence. An empty path skips the file.
func Load(path string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if path != "" {
		viperCfg.SetConfigFile(path)
		if readErr := viperCfg.ReadInConfig(); readErr != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, readErr)
		}
	}

	var cfg Config
	if unmarshalErr := viperCfg.Unmarshal(&cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("ignore", []string{})
	viperCfg.SetDefault("dirs", []string{})
	viperCfg.SetDefault("workers", 0)
	viperCfg.SetDefault("respect_gitignore", false)
	viperCfg.SetDefault("format", FormatText)
	viperCfg.SetDefault("package_manager", "")
}

// FindConfigFile searches for a configuration file in the project root and the
// user's home. Returns the path to the first file found or an error if none is found.
func FindConfigFile(projectRoot string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		projectRoot,
		filepath.Join(projectRoot, ".config"),
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depcheck.yaml",
		".depcheck.yml",
		"depcheck.yaml",
		"depcheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks the enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be one of text, json, yaml (got %q)", c.Format)
	}

	switch c.PackageManager {
	case "", "npm", "yarn", "pnpm":
	default:
		return fmt.Errorf("package_manager must be one of npm, yarn, pnpm (got %q)", c.PackageManager)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative (got %d)", c.Workers)
	}

	return nil
}
