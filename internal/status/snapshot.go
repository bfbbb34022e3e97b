// internal/status/snapshot.go
package status

import "fmt"

// DisplayState is what the panel currently shows.
// Left and right are always visible; the case can legitimately be absent.
type DisplayState struct {
	Left        string
	Right       string
	Case        string
	CaseVisible bool
}

// InitialState is the display before the first tick.
func InitialState() DisplayState {
	return DisplayState{
		Left:  Placeholder,
		Right: Placeholder,
		Case:  Placeholder,
	}
}

// FormatCharge renders a charge percentage the way the panel shows it.
func FormatCharge(v int) string {
	return fmt.Sprintf("%d %%", v)
}
