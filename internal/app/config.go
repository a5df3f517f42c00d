package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string // link description: a file or a directory

	LogFormat    string // "text" or "json"
	LogLevel     string // "debug", "info", "warn" or "error"
	ReportFormat string // "text" or "json"
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = "text"
	}
	return &cfg, nil
}
