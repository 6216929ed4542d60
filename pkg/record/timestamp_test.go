package record

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampWireFormat(t *testing.T) {
	at := At(time.Date(2026, 3, 4, 5, 6, 7, 891234567, time.FixedZone("x", 3600)))

	b, err := json.Marshal(at)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-04T04:06:07.891Z"`, string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, at.Equal(back.Time))
}

func TestTimestampAcceptsOffsets(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-04T23:30:00-02:00"`), &ts))
	assert.Equal(t, "2026-03-05", ts.Day())
}

func TestTimestampEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	b, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestDayKeyIsUTC(t *testing.T) {
	late := time.Date(2026, 1, 1, 23, 0, 0, 0, time.FixedZone("west", -5*3600))
	assert.Equal(t, "2026-01-02", DayKey(late))
	assert.True(t, At(late).SameDay(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)))
}

func TestDateFormats(t *testing.T) {
	v := time.Date(2026, 2, 9, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Monday, February 9, 2026", FormatLong(v))
	assert.Equal(t, "Feb 9, 2026", FormatShort(v))
}
