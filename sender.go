package sender

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

const DefaultEndpoint = "localhost:8125"

var ErrEndpointRequired = errors.New("endpoint is required")

// ErrorListener is told about packets lost to transport failures. It is the
// only place such failures are visible.
type ErrorListener func(err error)

type Config struct {
	// Endpoint is the collector's host:port.
	Endpoint string
	// Prefix is prepended verbatim to every metric name.
	Prefix string
	// Tags are appended to the tags of every metric.
	Tags      []string
	TagFormat TagFormat
	// Transport overrides the UDP socket the client would otherwise open.
	Transport Transport
	ErrorListener
	// TimePanics makes timed work report its duration when it panics, before
	// the panic continues. Otherwise only normal returns are timed.
	TimePanics bool
	// Rand overrides the sampler's randomness.
	Rand func() float64
	// Now overrides the clock used by timing helpers.
	Now func() time.Time
}

// Client emits metrics. Every method that takes a sample rate suppresses the
// metric entirely for rates <= 0 and always sends for rates >= 1. The only
// errors returned are caller mistakes such as an invalid name or tag; lost
// packets are never reported to the caller.
type Client interface {
	Set(name string, value string, tags []string, sampleRate float64) error
	Gauge(name string, value float64, tags []string, sampleRate float64) error
	Increment(name string, value int64, tags []string, sampleRate float64) error
	Decrement(name string, value int64, tags []string, sampleRate float64) error
	Histogram(name string, value float64, tags []string, sampleRate float64) error
	// Timing reports an already measured duration in milliseconds.
	Timing(name string, value float64, tags []string, sampleRate float64) error
	TimingDuration(name string, d time.Duration, tags []string, sampleRate float64) error
	// TimingSince reports the time elapsed since start, typically deferred.
	TimingSince(name string, start time.Time, tags []string, sampleRate float64) error
	// Timed returns a wrapper that reports how long the wrapped work takes.
	Timed(name string, tags []string, sampleRate float64) func(work func()) func()
	Send(r Record) error
	Close() error

	now() time.Time
	finishTiming(name string, start time.Time, tags []string, sampleRate float64, panicked bool)
}

func NewClient(ctx context.Context, config Config) (Client, error) {
	if config.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	addr, err := resolveEndpoint(ctx, config.Endpoint)
	if err != nil {
		return nil, err
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	config.Tags = append([]string(nil), config.Tags...)

	c := &clientImpl{
		config:  config,
		addr:    addr,
		sampler: Sampler{Rand: config.Rand},
	}

	c.transport = config.Transport
	if c.transport == nil {
		conn, err := listenUDP(ctx)
		if err != nil {
			return nil, err
		}
		c.transport = conn
		c.owned = conn
	}
	return c, nil
}

type clientImpl struct {
	config    Config
	addr      net.Addr
	transport Transport
	owned     net.PacketConn
	sampler   Sampler
	closed    atomic.Bool
}

func (c *clientImpl) Set(name string, value string, tags []string, sampleRate float64) error {
	return c.send(Set, name, value, tags, sampleRate)
}

func (c *clientImpl) Gauge(name string, value float64, tags []string, sampleRate float64) error {
	return c.send(Gauge, name, value, tags, sampleRate)
}

func (c *clientImpl) Increment(name string, value int64, tags []string, sampleRate float64) error {
	return c.send(Counter, name, value, tags, sampleRate)
}

func (c *clientImpl) Decrement(name string, value int64, tags []string, sampleRate float64) error {
	return c.send(Counter, name, -value, tags, sampleRate)
}

func (c *clientImpl) Histogram(name string, value float64, tags []string, sampleRate float64) error {
	return c.send(Histogram, name, value, tags, sampleRate)
}

func (c *clientImpl) Timing(name string, value float64, tags []string, sampleRate float64) error {
	return c.send(Timing, name, value, tags, sampleRate)
}

func (c *clientImpl) TimingDuration(name string, d time.Duration, tags []string, sampleRate float64) error {
	return c.Timing(name, milliseconds(d), tags, sampleRate)
}

func (c *clientImpl) send(kind Kind, name string, value interface{}, tags []string, sampleRate float64) error {
	return c.emit(Record{Name: name, Value: value, Kind: kind, Tags: tags, SampleRate: sampleRate})
}

// Send emits a prepared record. A record with a zero SampleRate is sent
// unconditionally.
func (c *clientImpl) Send(r Record) error {
	if r.SampleRate == 0 {
		r.SampleRate = 1
	}
	return c.emit(r)
}

// emit runs encode, sample and deliver in that order. Only encoding errors
// are returned.
func (c *clientImpl) emit(r Record) error {
	if r.Name == "" {
		return ErrInvalidMetricName
	}
	r.Name = c.config.Prefix + r.Name
	if len(c.config.Tags) > 0 {
		r.Tags = append(append(make([]string, 0, len(r.Tags)+len(c.config.Tags)), r.Tags...), c.config.Tags...)
	}

	packet, err := Encode(r, c.config.TagFormat)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.Name, err)
	}

	if !c.sampler.Sample(r.SampleRate) {
		return nil
	}
	c.deliver(packet)
	return nil
}

// Close releases the socket opened by NewClient. A supplied Transport is left
// to its owner. Metrics sent after Close are dropped.
func (c *clientImpl) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.owned != nil {
		return c.owned.Close()
	}
	return nil
}

func (c *clientImpl) now() time.Time {
	return c.config.Now()
}

func (c *clientImpl) reportError(err error) {
	if c.config.ErrorListener != nil {
		c.config.ErrorListener(err)
	}
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
