package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format for record timestamps: UTC, millisecond
// precision, so lexical order matches chronological order.
const Layout = "2006-01-02T15:04:05.000Z"

const (
	layoutDay   = "2006-01-02"
	layoutLong  = "Monday, January 2, 2006"
	layoutShort = "Jan 2, 2006"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

type Timestamp struct {
	time.Time
}

// At wraps t, truncated to the precision that survives a round trip.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// Day is the UTC calendar day of the timestamp, as YYYY-MM-DD.
func (t Timestamp) Day() string {
	return DayKey(t.Time)
}

func (t Timestamp) SameDay(then time.Time) bool {
	return t.Day() == DayKey(then)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(Layout)
}

// DayKey returns the UTC calendar day of v as YYYY-MM-DD.
func DayKey(v time.Time) string {
	return v.UTC().Format(layoutDay)
}

// FormatLong renders "Monday, January 2, 2006".
func FormatLong(v time.Time) string {
	return v.Local().Format(layoutLong)
}

// FormatShort renders "Jan 2, 2006".
func FormatShort(v time.Time) string {
	return v.Local().Format(layoutShort)
}
