package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the wire format for every date field: space-separated,
// second precision, no timezone suffix. The web client produces and parses
// exactly this shape, so both sides must agree on it.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp is a time.Time that marshals as a TimeLayout string.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// FromTimePtr wraps a nullable database value; nil stays nil.
func FromTimePtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := NewTimestamp(*t)
	return &ts
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp must be a %q string", TimeLayout)
	}
	parsed, err := time.Parse(TimeLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}
