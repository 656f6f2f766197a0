// Package config handles glmath configuration loading and management.
package config

// Config holds the library's diagnostics and numeric settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Numeric NumericConfig `yaml:"numeric"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

// NumericConfig holds tolerances used by approximate comparisons.
type NumericConfig struct {
	Epsilon float64 `yaml:"epsilon"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
			Console:    false,
		},
		Numeric: NumericConfig{
			Epsilon: 1e-6,
		},
	}
}
