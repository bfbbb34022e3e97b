// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// STATUS FILE
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.Status.File) == "" {
		return fmt.Errorf("status.file is required")
	}

	// ------------------------------------------------------------
	// POLL TIMING
	// ------------------------------------------------------------

	if cfg.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll.interval_ms must be > 0, got %d", cfg.Poll.IntervalMs)
	}
	if cfg.Poll.CacheTTLSeconds <= 0 {
		return fmt.Errorf("poll.cache_ttl_seconds must be > 0, got %d", cfg.Poll.CacheTTLSeconds)
	}

	switch strings.ToLower(cfg.Poll.Scheduler) {
	case "cron", "":
		// cron schedules have whole-second resolution
		if cfg.Poll.IntervalMs < 1000 || cfg.Poll.IntervalMs%1000 != 0 {
			return fmt.Errorf(
				"poll.interval_ms=%d: cron scheduler needs a whole number of seconds (use scheduler: ticker)",
				cfg.Poll.IntervalMs,
			)
		}
	case "ticker":
	default:
		return fmt.Errorf("poll.scheduler %q: must be cron or ticker", cfg.Poll.Scheduler)
	}

	// ------------------------------------------------------------
	// PANEL
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Panel.Format) {
	case "line", "waybar", "styled", "":
	default:
		return fmt.Errorf("panel.format %q: must be line, waybar or styled", cfg.Panel.Format)
	}

	if cfg.Panel.LowThreshold < 0 || cfg.Panel.LowThreshold > 100 {
		return fmt.Errorf("panel.low_threshold must be within 0..100, got %d", cfg.Panel.LowThreshold)
	}

	// ------------------------------------------------------------
	// OBSERVABILITY
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Logger.Format) {
	case "text", "json", "":
	default:
		return fmt.Errorf("logger.format %q: must be text or json", cfg.Logger.Format)
	}

	// bar frames own stdout
	panelOut := strings.TrimSpace(cfg.Panel.Output)
	if (panelOut == "" || isStdout(panelOut)) && isStdout(cfg.Logger.Output) {
		return fmt.Errorf("logger.output and panel.output cannot both be stdout")
	}

	if cfg.Tracer.Enabled {
		switch strings.ToLower(cfg.Tracer.Exporter) {
		case "stdout", "noop", "":
		default:
			return fmt.Errorf("tracer.exporter %q: must be stdout or noop", cfg.Tracer.Exporter)
		}
	}

	return nil
}

func isStdout(output string) bool {
	return strings.EqualFold(strings.TrimSpace(output), "stdout")
}
