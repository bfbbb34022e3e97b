// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Status.File = strings.TrimSpace(cfg.Status.File)

	// Enumerations are matched case-insensitively; empty means default.
	cfg.Poll.Scheduler = lowerOr(cfg.Poll.Scheduler, "cron")
	cfg.Panel.Format = lowerOr(cfg.Panel.Format, "line")
	cfg.Logger.Format = lowerOr(cfg.Logger.Format, "text")
	cfg.Tracer.Exporter = lowerOr(cfg.Tracer.Exporter, "stdout")

	if strings.TrimSpace(cfg.Panel.Output) == "" {
		cfg.Panel.Output = "stdout"
	}
	if strings.TrimSpace(cfg.Logger.Output) == "" {
		cfg.Logger.Output = "stderr"
	}
}

func lowerOr(v, def string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def
	}
	return v
}
