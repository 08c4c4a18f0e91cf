// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPort is the HTTP listen port when none is configured.
const DefaultPort = 8080

// DefaultHistoryLimit bounds how many stored analyses the history endpoint
// returns.
const DefaultHistoryLimit = 20

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume file (pdf/docx/txt)
	Job    string `json:"job,omitempty"`     // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from

	// Engine configuration
	SkillsFile   string `json:"skills_file,omitempty"`   // Path to skills.json
	SynonymsFile string `json:"synonyms_file,omitempty"` // Path to synonyms.json

	// Server
	Port         int    `json:"port,omitempty"`          // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	HistoryLimit int    `json:"history_limit,omitempty"` // Records returned by history endpoint

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config error: 'history_limit' must be non-negative")
	}

	for name, path := range map[string]string{
		"resume":        c.Resume,
		"job":           c.Job,
		"skills_file":   c.SkillsFile,
		"synonyms_file": c.SynonymsFile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.SkillsFile == "" {
		result.SkillsFile = defaults.SkillsFile
	}
	if result.SynonymsFile == "" {
		result.SynonymsFile = defaults.SynonymsFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.HistoryLimit == 0 {
		if defaults.HistoryLimit > 0 {
			result.HistoryLimit = defaults.HistoryLimit
		} else {
			result.HistoryLimit = DefaultHistoryLimit
		}
	}

	// Bool fields cannot distinguish unset from false, so CLI flags win.

	return result
}
