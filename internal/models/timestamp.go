package models

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	TIMESTAMP_LAYOUT      = "2006-01-02T15:04:05"
	TIMESTAMP_LAYOUT_FRAC = "2006-01-02T15:04:05.000000"
)

type TimestampKind int

const (
	// TimestampRaw holds source text that was not an epoch offset.
	TimestampRaw TimestampKind = iota
	// TimestampParsed holds a calendar time converted from epoch seconds.
	TimestampParsed
)

// Timestamp is either a parsed calendar time or the raw text it came from.
type Timestamp struct {
	Kind TimestampKind
	Time time.Time
	Raw  string
}

func ParsedTimestamp(t time.Time) Timestamp {
	return Timestamp{Kind: TimestampParsed, Time: t}
}

func RawTimestamp(raw string) Timestamp {
	return Timestamp{Kind: TimestampRaw, Raw: raw}
}

// ParseTimestamp interprets raw as floating point seconds since the Unix epoch
// and converts it to a calendar time in loc. Anything that cannot be converted
// is kept verbatim as a raw timestamp.
func ParseTimestamp(raw string, loc *time.Location) Timestamp {
	if loc == nil {
		loc = time.Local
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return RawTimestamp(raw)
	}

	// Beyond this the microsecond count overflows int64.
	if math.Abs(seconds) > 9e12 {
		return RawTimestamp(raw)
	}

	micros := int64(math.RoundToEven(seconds * 1e6))
	t := time.UnixMicro(micros).In(loc)
	if t.Year() < 1 || t.Year() > 9999 {
		return RawTimestamp(raw)
	}

	return ParsedTimestamp(t)
}

func (ts Timestamp) IsParsed() bool {
	return ts.Kind == TimestampParsed
}

// String renders parsed timestamps as naive wall-clock text, adding
// microseconds only when they are non-zero.
func (ts Timestamp) String() string {
	if ts.Kind != TimestampParsed {
		return ts.Raw
	}

	if ts.Time.Nanosecond() == 0 {
		return ts.Time.Format(TIMESTAMP_LAYOUT)
	}

	return ts.Time.Format(TIMESTAMP_LAYOUT_FRAC)
}

func (ts Timestamp) Value() (driver.Value, error) {
	return ts.String(), nil
}

func (ts *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*ts = RawTimestamp("")
	case time.Time:
		*ts = ParsedTimestamp(v)
	case string:
		*ts = parseStoredTimestamp(v)
	case []byte:
		*ts = parseStoredTimestamp(string(v))
	default:
		return fmt.Errorf("unsupported timestamp value of type %T", value)
	}

	return nil
}

func parseStoredTimestamp(s string) Timestamp {
	for _, layout := range []string{TIMESTAMP_LAYOUT_FRAC, TIMESTAMP_LAYOUT} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ParsedTimestamp(t)
		}
	}

	return RawTimestamp(s)
}
