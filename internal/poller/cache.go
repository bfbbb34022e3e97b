// internal/poller/cache.go
package poller

import (
	"time"

	"github.com/tamzrod/buds-status/internal/status"
)

// FieldCache records, per field, the observation time of the last
// real value shown. Zero means never.
type FieldCache struct {
	LeftUpdatedAt  time.Time
	RightUpdatedAt time.Time
	CaseUpdatedAt  time.Time
}

func (c *FieldCache) slot(f status.Field) *time.Time {
	switch f {
	case status.FieldLeft:
		return &c.LeftUpdatedAt
	case status.FieldRight:
		return &c.RightUpdatedAt
	default:
		return &c.CaseUpdatedAt
	}
}

// UpdatedAt returns the cached timestamp for f.
func (c *FieldCache) UpdatedAt(f status.Field) time.Time {
	return *c.slot(f)
}

// Touch moves the timestamp for f forward to at. It never moves backwards.
func (c *FieldCache) Touch(f status.Field, at time.Time) {
	s := c.slot(f)
	if at.After(*s) {
		*s = at
	}
}

// Expired reports whether f has no cached value newer than limit.
func (c *FieldCache) Expired(f status.Field, limit time.Time) bool {
	at := c.UpdatedAt(f)
	return at.IsZero() || at.Before(limit)
}
