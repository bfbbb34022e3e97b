package panel

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/buds-status/internal/status"
)

func decodeFrame(t *testing.T, b []byte) waybarFrame {
	t.Helper()
	var f waybarFrame
	require.NoError(t, json.Unmarshal(b, &f))
	return f
}

func TestWaybar_Disconnected(t *testing.T) {
	enc := waybarEncoder{icons: testIcons, low: 20}

	f := decodeFrame(t, enc.Frame(status.InitialState()))

	assert.Equal(t, "- % B - %", f.Text)
	assert.Equal(t, "disconnected", f.Class)
	assert.Nil(t, f.Percentage)
	assert.Equal(t, "Left: - %\nRight: - %", f.Tooltip)
}

func TestWaybar_ConnectedLowestWins(t *testing.T) {
	enc := waybarEncoder{icons: testIcons, low: 20}

	f := decodeFrame(t, enc.Frame(status.DisplayState{
		Left: "55 %", Right: "80 %", Case: "40 %", CaseVisible: true,
	}))

	assert.Equal(t, "connected", f.Class)
	require.NotNil(t, f.Percentage)
	assert.Equal(t, 40, *f.Percentage)
	assert.Equal(t, "Left: 55 %\nRight: 80 %\nCase: 40 %", f.Tooltip)
}

func TestWaybar_LowAndHiddenCaseIgnored(t *testing.T) {
	enc := waybarEncoder{icons: testIcons, low: 20}

	f := decodeFrame(t, enc.Frame(status.DisplayState{
		Left: "18 %", Right: "- %", Case: "5 %", CaseVisible: false,
	}))

	assert.Equal(t, "low", f.Class)
	require.NotNil(t, f.Percentage)
	assert.Equal(t, 18, *f.Percentage)
}

func TestWaybar_HostDetachBlank(t *testing.T) {
	var buf bytes.Buffer
	h := NewWaybar(&buf, testIcons, 20)
	require.NoError(t, h.Attach())
	require.NoError(t, h.Render())
	require.NoError(t, h.Detach())

	got := lines(&buf)
	require.Len(t, got, 2)
	assert.Equal(t, `{"text":""}`, got[1])
}
