package sender

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TagFormat selects how tags are attached to a packet.
type TagFormat int

const (
	// TagFormatDatadog appends tags as a trailing |#tag1,tag2 clause.
	TagFormatDatadog TagFormat = iota
	// TagFormatInfluxDB attaches tags to the name as a line protocol series key.
	TagFormatInfluxDB
)

// Encode renders a record as a wire packet:
//
//	<name>:<value>|<type>[|@<rate>][|#<tag>,<tag>,...]
//
// Values use their shortest text form, so a whole float such as 23.0 renders
// as 23. Encode performs no I/O and returns identical output for identical
// input.
func Encode(r Record, format TagFormat) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	value, _ := formatValue(r.Kind, r.Value)

	name := r.Name
	if format == TagFormatInfluxDB {
		key, err := seriesKey(r.Name, r.Tags)
		if err != nil {
			return "", err
		}
		name = key
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte('|')
	b.WriteString(r.Kind.TypeCode())

	if r.sampled() {
		b.WriteString("|@")
		b.WriteString(strconv.FormatFloat(r.SampleRate, 'f', -1, 64))
	}

	if format == TagFormatDatadog && len(r.Tags) > 0 {
		b.WriteString("|#")
		b.WriteString(strings.Join(r.Tags, ","))
	}

	return b.String(), nil
}

func formatValue(kind Kind, value interface{}) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case string:
		// only sets carry opaque identifiers
		if kind != Set || v == "" || strings.ContainsAny(v, ":|@#\n") {
			return "", fmt.Errorf("%w: %q for %s", ErrInvalidValue, v, kind)
		}
		return v, nil
	}
	return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
}

// formatFloat renders the shortest form that round-trips at the given bit size.
func formatFloat(v float64, bitSize int) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, v)
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize), nil
}
