package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables consulted by Load.
const (
	EnvConfig   = "GLMATH_CONFIG"
	EnvLogLevel = "GLMATH_LOG_LEVEL"
	EnvLogFile  = "GLMATH_LOG_FILE"
	EnvEpsilon  = "GLMATH_EPSILON"
)

// applyEnv applies environment overrides to the config.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := os.Getenv(EnvEpsilon); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvEpsilon, err)
		}
		cfg.Numeric.Epsilon = eps
	}
	return nil
}
