// internal/status/record.go
package status

import (
	"strings"
	"time"
)

// Field identifies one of the three displayed values.
type Field int

const (
	FieldLeft Field = iota
	FieldRight
	FieldCase
)

// Fields lists every field in display order.
var Fields = [...]Field{FieldLeft, FieldRight, FieldCase}

func (f Field) String() string {
	switch f {
	case FieldLeft:
		return "left"
	case FieldRight:
		return "right"
	case FieldCase:
		return "case"
	default:
		return "unknown"
	}
}

// Record is one observation written by the helper process.
// Every part of it is optional.
type Record struct {
	Date   *string `json:"date,omitempty"`
	Charge *Charge `json:"charge,omitempty"`
}

// Charge holds the raw percentages. nil means the key was absent.
type Charge struct {
	Left  *int `json:"left,omitempty"`
	Right *int `json:"right,omitempty"`
	Case  *int `json:"case,omitempty"`
}

// Value returns the charge for f and whether it is usable:
// present and not the unknown sentinel.
func (r Record) Value(f Field) (int, bool) {
	if r.Charge == nil {
		return 0, false
	}

	var v *int
	switch f {
	case FieldLeft:
		v = r.Charge.Left
	case FieldRight:
		v = r.Charge.Right
	case FieldCase:
		v = r.Charge.Case
	}

	if v == nil || *v == ChargeUnknown {
		return 0, false
	}
	return *v, true
}

// zone-less layouts are read in local time, the way the helper writes them.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time parses the observation date. ok is false when the date is
// absent or unparseable; callers treat both as "not fresh".
func (r Record) Time() (t time.Time, ok bool) {
	if r.Date == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(*r.Date)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
