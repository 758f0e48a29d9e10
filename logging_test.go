package sender

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	client, err := NewClient(context.Background(), Config{
		Endpoint:      "127.0.0.1:8125",
		Transport:     BrokenTransport{},
		ErrorListener: LogErrors(logger),
	})
	require.NoError(t, err)

	require.NoError(t, client.Gauge("lost", 1, nil, 1))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="metric dropped"`)
	assert.Contains(t, out, "component=statsd")
	assert.Contains(t, out, "socket error")
}

func TestLogErrors_NilLogger(t *testing.T) {
	listener := LogErrors(nil)
	assert.NotPanics(t, func() {
		listener(errTransportClosed)
	})
}
