package sender

import "time"

func (c *clientImpl) TimingSince(name string, start time.Time, tags []string, sampleRate float64) error {
	return c.TimingDuration(name, c.now().Sub(start), tags, sampleRate)
}

// Timed returns a wrapper that reports each invocation of work as a timing
// metric. Go functions carry no name or doc to copy, so the wrapper is a new
// func value with the same shape rather than an identical one.
func (c *clientImpl) Timed(name string, tags []string, sampleRate float64) func(work func()) func() {
	return func(work func()) func() {
		timed := TimedFunc(c, name, tags, sampleRate, func(struct{}) struct{} {
			work()
			return struct{}{}
		})
		return func() {
			timed(struct{}{})
		}
	}
}

// TimedFunc wraps fn so every call reports its elapsed time in milliseconds
// under name. The argument and result pass through unchanged; work taking
// several arguments can bundle them in a struct.
//
// A panicking fn is timed only when the client's Config.TimePanics is set.
// Because the wrapped call has already happened, an invalid name or tag is
// reported to the client's ErrorListener rather than returned.
func TimedFunc[A, R any](c Client, name string, tags []string, sampleRate float64, fn func(A) R) func(A) R {
	return func(arg A) R {
		start := c.now()
		panicked := true
		defer func() {
			c.finishTiming(name, start, tags, sampleRate, panicked)
		}()

		result := fn(arg)
		panicked = false
		return result
	}
}

func (c *clientImpl) finishTiming(name string, start time.Time, tags []string, sampleRate float64, panicked bool) {
	if panicked && !c.config.TimePanics {
		return
	}
	if err := c.TimingSince(name, start, tags, sampleRate); err != nil {
		c.reportError(err)
	}
}
