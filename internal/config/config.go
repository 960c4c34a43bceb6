package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the slopcheck configuration.
type Config struct {
	Format     string        `mapstructure:"format"`
	FailScore  int           `mapstructure:"failScore"`
	Aggressive bool          `mapstructure:"aggressive"`
	Kind       string        `mapstructure:"kind"`
	RulesFile  string        `mapstructure:"rulesFile"`
	Cache      CacheConfig   `mapstructure:"cache"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// CacheConfig controls the report cache. Disabled by default; detection is a
// cheap in-memory pass and persisting results is an explicit opt-in.
type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Dir        string `mapstructure:"dir"`
	TTLSeconds int    `mapstructure:"ttlSeconds"`
}

// LoggingConfig controls the zap logger used by watch mode.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:    "text",
		FailScore: 0,
		Kind:      "auto",
		Cache: CacheConfig{
			Enabled:    false,
			TTLSeconds: 86400,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "slopcheck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "slopcheck"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "slopcheck"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "slopcheck"), nil
	default:
		return filepath.Join(home, ".config", "slopcheck"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. Overrides come from CLI flags; only set values should appear.
func Load(overrides map[string]string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	dir, err := ConfigDir()
	if err != nil {
		return Config{}, err
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("SLOPCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(&cfg, key, value); err != nil {
			return Config{}, err
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("format", def.Format)
	v.SetDefault("failScore", def.FailScore)
	v.SetDefault("aggressive", def.Aggressive)
	v.SetDefault("kind", def.Kind)
	v.SetDefault("rulesFile", def.RulesFile)
	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.dir", def.Cache.Dir)
	v.SetDefault("cache.ttlSeconds", def.Cache.TTLSeconds)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// LoadFile loads only the config file, ignoring env overrides. Returns
// Default() if the file does not exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file as YAML.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("format", cfg.Format)
	v.Set("failScore", cfg.FailScore)
	v.Set("aggressive", cfg.Aggressive)
	v.Set("kind", cfg.Kind)
	v.Set("rulesFile", cfg.RulesFile)
	v.Set("cache.enabled", cfg.Cache.Enabled)
	v.Set("cache.dir", cfg.Cache.Dir)
	v.Set("cache.ttlSeconds", cfg.Cache.TTLSeconds)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SetField sets a single config field by key name. Returns an error for
// unknown keys or unparseable values.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "format":
		cfg.Format = value
	case "failScore":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("failScore must be an integer: %w", err)
		}
		cfg.FailScore = n
	case "aggressive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("aggressive must be a boolean: %w", err)
		}
		cfg.Aggressive = b
	case "kind":
		cfg.Kind = value
	case "rulesFile":
		cfg.RulesFile = value
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	case "logging.level":
		cfg.Logging.Level = value
	case "logging.format":
		cfg.Logging.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Validate checks field values that have fixed vocabularies or ranges.
func Validate(cfg Config) error {
	switch cfg.Format {
	case "text", "json", "markdown", "sarif":
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, markdown, or sarif)", cfg.Format)
	}
	switch cfg.Kind {
	case "auto", "prose", "code":
	default:
		return fmt.Errorf("invalid kind: %s (must be auto, prose, or code)", cfg.Kind)
	}
	if cfg.FailScore < 0 || cfg.FailScore > 100 {
		return fmt.Errorf("invalid failScore: %d (must be 0-100)", cfg.FailScore)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (must be json or console)", cfg.Logging.Format)
	}
	return nil
}
