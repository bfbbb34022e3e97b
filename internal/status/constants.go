// internal/status/constants.go
package status

// Display and record constants.
// These values match what the helper process writes and MUST NOT be configurable.

// ---- FILE ----

// DefaultFilePath is where the helper process appends its observations.
const DefaultFilePath = "/tmp/airstatus.out"

// ---- CHARGE ----

// ChargeUnknown is the sentinel the helper writes for a field it cannot observe
// (earbud not connected, case closed, ...). It is handled exactly like an absent field.
const ChargeUnknown = -1

// ---- DISPLAY ----

// Placeholder is shown for a field with no usable value.
const Placeholder = "- %"
