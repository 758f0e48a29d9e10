package sender

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	protocol "github.com/influxdata/line-protocol"
)

// seriesMetric adapts a record's name and tags to protocol.Metric so the line
// protocol encoder can escape them into a series key.
type seriesMetric struct {
	name string
	tags []*protocol.Tag
}

func (m *seriesMetric) Name() string {
	return m.name
}

func (m *seriesMetric) TagList() []*protocol.Tag {
	return m.tags
}

// FieldList carries a placeholder field since the encoder refuses field-less metrics.
func (m *seriesMetric) FieldList() []*protocol.Field {
	return []*protocol.Field{{Key: "value", Value: int64(1)}}
}

func (m *seriesMetric) Time() time.Time {
	return time.Unix(0, 0)
}

func (m *seriesMetric) addTag(key, value string) {
	m.tags = append(m.tags, &protocol.Tag{
		Key:   key,
		Value: value,
	})
}

// headerWriter keeps only the first write of an encoded line, which is the
// measurement and tag set followed by a single space.
type headerWriter struct {
	header []byte
}

func (w *headerWriter) Write(p []byte) (int, error) {
	if w.header == nil {
		w.header = append([]byte{}, p...)
	}
	return len(p), nil
}

// seriesKey renders name,key=value,... with line protocol escaping. Bare flag
// tags become flag=true.
func seriesKey(name string, tags []string) (string, error) {
	m := &seriesMetric{name: name}
	for _, tag := range tags {
		key, value, found := strings.Cut(tag, ":")
		if !found {
			value = "true"
		}
		if key == "" || value == "" || strings.Contains(value, ":") {
			return "", fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
		m.addTag(key, value)
	}

	var w headerWriter
	if _, err := protocol.NewEncoder(&w).Encode(m); err != nil {
		return "", fmt.Errorf("failed to encode series key: %w", err)
	}
	return string(bytes.TrimSuffix(w.header, []byte(" "))), nil
}
