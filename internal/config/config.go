// Package config provides exporter configuration from command-line flags,
// environment variables, .env files and a YAML export profile.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/listenupapp/catalog-export/internal/errors"
)

// Config holds the exporter configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
	Output  OutputConfig
	Profile Profile
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// CatalogConfig holds the location of the catalog cache.
type CatalogConfig struct {
	// CachePath is the SQLite file built by the Gutenberg cache builder.
	CachePath string
}

// OutputConfig holds export destination configuration.
type OutputConfig struct {
	Dir string
	// Archive bundles all files into a single zip in Dir instead of loose CSVs.
	Archive bool
}

// Flags holds raw command-line values. Empty strings mean "not set on the command line".
type Flags struct {
	Env         string
	LogLevel    string
	CachePath   string
	OutputDir   string
	Archive     string
	ProfilePath string
	EnvFile     string
}

// Bind registers the flags on fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.Env, "env", "", "Environment (development, staging, production)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.CachePath, "cache-path", "", "Path to the Gutenberg catalog cache (default: gutenbergindex.db)")
	fs.StringVar(&f.OutputDir, "out", "", "Directory to write CSV files to (default: current directory)")
	fs.StringVar(&f.Archive, "archive", "", "Write a single zip archive instead of loose files (default: false)")
	fs.StringVar(&f.ProfilePath, "profile", "", "Path to a YAML export profile (default: built-in)")
	fs.StringVar(&f.EnvFile, "env-file", ".env", "Path to .env file")
	fs.Lookup("archive").NoOptDefVal = "true"
}

// Load builds the configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(flags Flags) (*Config, error) {
	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(flags.EnvFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(flags.LogLevel, "LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			CachePath: getConfigValue(flags.CachePath, "CATALOG_CACHE_PATH", "gutenbergindex.db"),
		},
		Output: OutputConfig{
			Dir:     getConfigValue(flags.OutputDir, "OUTPUT_DIR", "."),
			Archive: getBoolConfigValue(flags.Archive, "OUTPUT_ARCHIVE", false),
		},
		Profile: DefaultProfile(),
	}

	if profilePath := getConfigValue(flags.ProfilePath, "EXPORT_PROFILE", ""); profilePath != "" {
		path, err := expandPath(profilePath)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeConfig, "invalid profile path")
		}
		profile, err := LoadProfile(path)
		if err != nil {
			return nil, err
		}
		cfg.Profile = profile
	}

	var err error
	if cfg.Catalog.CachePath, err = expandPath(cfg.Catalog.CachePath); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "invalid cache path")
	}
	if cfg.Output.Dir, err = expandPath(cfg.Output.Dir); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "invalid output directory")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return errors.Configf("invalid environment: %q (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return errors.Configf("invalid log level: %q (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Catalog.CachePath == "" {
		return errors.Config("catalog cache path cannot be empty")
	}
	if c.Output.Dir == "" {
		return errors.Config("output directory cannot be empty")
	}

	return c.Profile.Validate()
}

// expandPath expands ~ and makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Real environment variables win over the file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
