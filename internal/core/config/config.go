package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultSummaryTemplate renders a trip summary for the CLI and the
// clipboard. Users can replace it by dropping a mustache template into
// ~/.config/tripdeck/summary_template.txt.
const DefaultSummaryTemplate = `{{title}} ({{startDate}} -> {{endDate}}, {{totalDays}} days)

Itinerary days: {{itineraryDaysCount}}
Activities:     {{activitiesCount}}
Expenses:       {{expensesCount}} totalling {{expensesTotal}}
Budget:         {{budgetTotal}}
Remaining:      {{remaining}}
{{#overBudget}}Over budget by {{overrun}}.{{/overBudget}}`

const defaultServerURL = "http://localhost:8080/api"

const defaultRequestTimeout = 15 * time.Second

type Config struct {
	ServerURL       string
	Currency        string
	RequestTimeout  time.Duration
	SummaryTemplate string
}

type tomlConfig struct {
	ServerURL             string `toml:"server_url"`
	Currency              string `toml:"currency"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
}

// Dir returns the config directory (~/.config/tripdeck).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tripdeck"), nil
}

// Load reads config from ~/.config/tripdeck/. Missing files mean defaults;
// the TRIPDECK_SERVER_URL environment variable wins over everything.
func Load() (*Config, error) {
	cfg := &Config{
		ServerURL:       defaultServerURL,
		RequestTimeout:  defaultRequestTimeout,
		SummaryTemplate: DefaultSummaryTemplate,
	}

	dir, err := Dir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	tomlPath := filepath.Join(dir, "config.toml")
	templatePath := filepath.Join(dir, "summary_template.txt")

	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			if tc.ServerURL != "" {
				cfg.ServerURL = tc.ServerURL
			}
			cfg.Currency = tc.Currency
			if tc.RequestTimeoutSeconds > 0 {
				cfg.RequestTimeout = time.Duration(tc.RequestTimeoutSeconds) * time.Second
			}
		}
	}

	// If custom template exists, use it
	if data, err := os.ReadFile(templatePath); err == nil {
		cfg.SummaryTemplate = string(data)
	}

	if env := os.Getenv("TRIPDECK_SERVER_URL"); env != "" {
		cfg.ServerURL = env
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	return cfg, nil
}
