package sender

import "math/rand/v2"

// Sampler decides per call whether a metric is emitted. Each decision is an
// independent Bernoulli trial.
type Sampler struct {
	// Rand returns a uniform value in [0,1). Defaults to math/rand/v2.Float64.
	Rand func() float64
}

// Sample reports whether a metric with the given rate should be sent. Rates of
// one or more always pass and rates of zero or less never do.
func (s Sampler) Sample(rate float64) bool {
	if rate >= 1 {
		return true
	}
	if rate <= 0 {
		return false
	}
	draw := s.Rand
	if draw == nil {
		draw = rand.Float64
	}
	return draw() < rate
}
