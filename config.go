package main

import (
	"fmt"
	"os"
)

// Config is read from the environment (and .env, via godotenv) and then
// overridden by command-line flags.
type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	ContentPath string
	OutDir      string
}

func loadConfig() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		ContentPath: os.Getenv("PORTFOLIO_CONTENT"),
		OutDir:      os.Getenv("PORTFOLIO_OUT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "public"
	}
	return cfg
}

func (c Config) validate() error {
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q (want json or console)", c.LogFormat)
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}

func (c Config) logger() (*Logger, error) {
	return NewLogger(LogOptions{Level: c.LogLevel, HumanReadable: c.LogFormat == "console"})
}
