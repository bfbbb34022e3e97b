// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/buds-status/internal/status"
)

type Config struct {
	Status StatusConfig `yaml:"status"`
	Poll   PollConfig   `yaml:"poll"`
	Panel  PanelConfig  `yaml:"panel"`
	Logger LoggerConfig `yaml:"logger"`
	Tracer TracerConfig `yaml:"tracer"`
}

// ---- STATUS FILE ----

type StatusConfig struct {
	File string `yaml:"file"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs      int    `yaml:"interval_ms"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	Scheduler       string `yaml:"scheduler"` // cron | ticker

	// UniformExpiry applies the left earbud's expiry rule to all fields:
	// a stale record does not clear a value still inside its TTL window.
	UniformExpiry bool `yaml:"uniform_expiry"`
}

// ---- PANEL ----

type PanelConfig struct {
	Format       string `yaml:"format"` // line | waybar | styled
	Output       string `yaml:"output"` // stdout | stderr | file path
	BudsIcon     string `yaml:"buds_icon"`
	CaseIcon     string `yaml:"case_icon"`
	LowThreshold int    `yaml:"low_threshold"`
}

// ---- OBSERVABILITY ----

type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
	Output string `yaml:"output"` // stderr | stdout | file path
}

type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // stdout | noop
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Status: StatusConfig{File: status.DefaultFilePath},
		Poll: PollConfig{
			IntervalMs:      10000,
			CacheTTLSeconds: 3600,
			Scheduler:       "cron",
		},
		Panel: PanelConfig{
			Format:       "line",
			Output:       "stdout",
			BudsIcon:     "🎧",
			CaseIcon:     "▣",
			LowThreshold: 20,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Exporter: "stdout",
		},
	}
}

// Load reads a YAML config on top of Defaults and applies env overrides.
// An empty path or a missing file yields the defaults.
// Load does not validate; call Validate then Normalize.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// ApplyEnvOverrides maps BUDSTATUS_* env vars to config fields.
// Unparseable numbers are ignored.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BUDSTATUS_STATUS_FILE"); v != "" {
		cfg.Status.File = v
	}
	if v := os.Getenv("BUDSTATUS_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.IntervalMs = n
		}
	}
	if v := os.Getenv("BUDSTATUS_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.CacheTTLSeconds = n
		}
	}
	if v := os.Getenv("BUDSTATUS_PANEL_FORMAT"); v != "" {
		cfg.Panel.Format = v
	}
	if v := os.Getenv("BUDSTATUS_PANEL_OUTPUT"); v != "" {
		cfg.Panel.Output = v
	}
	if v := os.Getenv("BUDSTATUS_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("BUDSTATUS_TRACER_ENABLED"); v == "true" {
		cfg.Tracer.Enabled = true
	}
}
