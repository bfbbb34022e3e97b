package tracer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/buds-status/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracerConfig{Enabled: false}, nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := StartSpan(context.Background(), "poller.tick")
	assert.False(t, span.SpanContext().IsValid(), "noop provider must not produce sampled spans")
	span.End()
}

func TestSetupUnsupportedExporter(t *testing.T) {
	_, err := Setup(context.Background(), config.TracerConfig{Enabled: true, Exporter: "zipkin"}, nil)
	require.Error(t, err)
}

func TestSetupStdoutWritesSpans(t *testing.T) {
	var buf bytes.Buffer

	shutdown, err := Setup(context.Background(), config.TracerConfig{Enabled: true, Exporter: "stdout"}, &buf)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "poller.tick")
	span.SetAttributes(StringAttr("left", "55 %"), BoolAttr("stale", false))
	RecordError(span, errors.New("boom"))
	span.End()

	// shutdown flushes the batcher
	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "poller.tick")

	_, err = Setup(context.Background(), config.TracerConfig{Enabled: false}, nil)
	require.NoError(t, err)
}
