package sender

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	original := Default()
	require.NotNil(t, original)
	assert.Same(t, original, Default())

	client, transport := newFakeClient(t, Config{})
	SetDefault(client)
	defer SetDefault(original)

	require.NoError(t, Default().Increment("via.default", 1, nil, 1))
	assert.Equal(t, "via.default:1|c", transport.Recv())
}

func TestDroppingClient(t *testing.T) {
	client := droppingClient(errors.New("no socket"))

	assert.NotPanics(t, func() {
		assert.NoError(t, client.Increment("dropped", 1, []string{"a:b"}, 1))
		assert.NoError(t, client.Gauge("dropped", 1.5, nil, 0.5))
		assert.NoError(t, client.TimingSince("dropped", time.Now(), nil, 1))
		client.Timed("dropped", nil, 1)(func() {})()
	})
	assert.ErrorIs(t, client.Set("", "x", nil, 1), ErrInvalidMetricName)
	assert.NoError(t, client.Close())
}
