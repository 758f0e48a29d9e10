package sender

import (
	"context"
	"net"
	"sync"
	"time"
)

var (
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
	defaultClient Client
)

// Default returns the process-wide client, creating one for DefaultEndpoint on
// first use. If that client cannot be created, the returned client drops every
// metric.
func Default() Client {
	defaultOnce.Do(func() {
		c, err := NewClient(context.Background(), Config{Endpoint: DefaultEndpoint})
		if err != nil {
			c = droppingClient(err)
		}
		defaultMu.Lock()
		if defaultClient == nil {
			defaultClient = c
		} else {
			c.Close()
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultClient
}

// SetDefault replaces the process-wide client. The previous client is not
// closed.
func SetDefault(c Client) {
	defaultMu.Lock()
	defaultClient = c
	defaultMu.Unlock()
}

// droppingClient returns a client whose sends all fail with err.
func droppingClient(err error) Client {
	return &clientImpl{
		config:    Config{Now: time.Now},
		addr:      &net.UDPAddr{},
		transport: brokenTransport{err: err},
	}
}
