package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	DatabasePath   string  `mapstructure:"database_path"`
	LogLevel       string  `mapstructure:"log_level"`
	LogFormat      string  `mapstructure:"log_format"` // console, json
	MatchThreshold float64 `mapstructure:"match_threshold"`
	MaxResults     int     `mapstructure:"max_results"` // 0 means unlimited
	Workers        int     `mapstructure:"workers"`     // 0 means GOMAXPROCS
	MetricsFile    string  `mapstructure:"metrics_file"`
	OutputFormat   string  `mapstructure:"output_format"` // table, json
}

var AppConfig *Config

type keyKind int

const (
	kindString keyKind = iota
	kindFloat
	kindInt
)

type keySpec struct {
	kind    keyKind
	def     interface{}
	choices []string
}

var keys = map[string]keySpec{
	"database_path":   {kind: kindString, def: ""},
	"log_level":       {kind: kindString, def: "info", choices: []string{"debug", "info", "warn", "error"}},
	"log_format":      {kind: kindString, def: "console", choices: []string{"console", "json"}},
	"match_threshold": {kind: kindFloat, def: 20.0},
	"max_results":     {kind: kindInt, def: 0},
	"workers":         {kind: kindInt, def: 0},
	"metrics_file":    {kind: kindString, def: ""},
	"output_format":   {kind: kindString, def: "table", choices: []string{"table", "json"}},
}

// ValidKeys lists the configuration keys in sorted order
func ValidKeys() []string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Initialize loads or creates the configuration file under ~/.labyrinth
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".labyrinth"))
}

// InitializeAt loads or creates config.yaml in configDir
func InitializeAt(configDir string) error {
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.Reset()
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("labyrinth")
	viper.AutomaticEnv()

	for name, ks := range keys {
		viper.SetDefault(name, ks.def)
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	fillDefaults(cfg)
	AppConfig = cfg
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Labyrinth Configuration
# Leave database_path empty to use labyrinth.db next to this file
database_path: ""

# Logging: level debug, info, warn, error; format console or json
log_level: info
log_format: console

# Matching: scores must exceed match_threshold to be listed.
# max_results 0 lists every match, workers 0 uses all CPUs.
match_threshold: 20
max_results: 0
workers: 0

# Write Prometheus metrics to this file after each command (empty disables)
metrics_file: ""

# Output: table or json
output_format: table
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Validate checks a key/value pair without applying it
func Validate(key, value string) error {
	ks, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(ValidKeys(), ", "))
	}
	switch ks.kind {
	case kindFloat:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be between 0 and 100", key)
		}
	case kindInt:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		if v < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}
	if len(ks.choices) > 0 {
		for _, c := range ks.choices {
			if strings.EqualFold(c, value) {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of: %s", key, strings.Join(ks.choices, ", "))
	}
	return nil
}

// Set validates and persists a configuration value
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	ks := keys[key]
	switch ks.kind {
	case kindFloat:
		v, _ := strconv.ParseFloat(value, 64)
		viper.Set(key, v)
	case kindInt:
		v, _ := strconv.Atoi(value)
		viper.Set(key, v)
	default:
		if len(ks.choices) > 0 {
			value = strings.ToLower(value)
		}
		viper.Set(key, value)
	}
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if AppConfig != nil {
		if err := viper.Unmarshal(AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
		fillDefaults(AppConfig)
	}
	return nil
}

// fillDefaults resolves an empty database path next to the config file
func fillDefaults(cfg *Config) {
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(filepath.Dir(viper.ConfigFileUsed()), "labyrinth.db")
	}
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file in use
func GetConfigPath() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".labyrinth", "config.yaml")
}
