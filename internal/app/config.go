package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // .hcl files or directories

	LogFormat    string
	LogLevel     string
	ReportFormat string

	Trace bool // export spans of the run
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one ability file or directory is required")
	}
	for _, p := range cfg.Paths {
		if p == "" {
			return nil, errors.New("ability paths cannot be empty")
		}
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.ReportFormat == "" {
		cfg.ReportFormat = string(report.FormatText)
	}
	format, err := report.ParseFormat(cfg.ReportFormat)
	if err != nil {
		return nil, err
	}
	cfg.ReportFormat = string(format)

	return &cfg, nil
}
