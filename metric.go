package sender

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidMetricName is returned for empty names or names containing protocol delimiters.
	ErrInvalidMetricName = errors.New("invalid metric name")
	// ErrInvalidTag is returned for empty tags or tags containing protocol delimiters.
	ErrInvalidTag = errors.New("invalid tag")
	// ErrInvalidValue is returned when a value cannot be rendered for the metric kind.
	ErrInvalidValue = errors.New("invalid metric value")
)

type Kind int

const (
	Counter Kind = iota
	Gauge
	Histogram
	Set
	Timing
)

// TypeCode returns the wire type suffix for the kind.
func (k Kind) TypeCode() string {
	switch k {
	case Counter:
		return "c"
	case Gauge:
		return "g"
	case Histogram:
		return "h"
	case Set:
		return "s"
	case Timing:
		return "ms"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	case Histogram:
		return "histogram"
	case Set:
		return "set"
	case Timing:
		return "timing"
	}
	return "unknown"
}

// Record is a single metric observation. It is built per call and never retained.
//
// A SampleRate of zero or at least one means the record is unsampled and no
// rate clause is encoded.
type Record struct {
	Name       string
	Value      interface{}
	Kind       Kind
	Tags       []string
	SampleRate float64
}

func NewRecord(kind Kind, name string, value interface{}) *Record {
	return &Record{Name: name, Value: value, Kind: kind, SampleRate: 1}
}

func (r *Record) AddTag(tag string) {
	r.Tags = append(r.Tags, tag)
}

func (r *Record) SetSampleRate(rate float64) {
	r.SampleRate = rate
}

// Validate reports caller-input errors: a bad name, a malformed tag or an
// unrenderable value.
func (r Record) Validate() error {
	if r.Name == "" || strings.ContainsAny(r.Name, ":|@#\n") {
		return ErrInvalidMetricName
	}
	for _, tag := range r.Tags {
		if tag == "" || strings.ContainsAny(tag, "|,#\n") {
			return ErrInvalidTag
		}
	}
	if r.Kind.TypeCode() == "" {
		return ErrInvalidValue
	}
	if _, err := formatValue(r.Kind, r.Value); err != nil {
		return err
	}
	return nil
}

func (r Record) sampled() bool {
	return r.SampleRate > 0 && r.SampleRate < 1
}
