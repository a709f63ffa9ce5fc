package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 14, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("06:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("06:30"), ts)

	for _, in := range []string{"", "25:00", "6:3", "abc", "14:60"} {
		_, err := NewTimeStringFromString(in)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", in)
	}
}

func TestNewTimeStringFromHourMinute(t *testing.T) {
	ts, err := NewTimeStringFromHourMinute(6, 0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("06:00"), ts)

	ts, err = NewTimeStringFromHourMinute(23, 59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	_, err = NewTimeStringFromHourMinute(24, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromHourMinute(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromHourMinute(12, 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		in      TimeString
		minutes int
		want    TimeString
	}{
		{"14:00", 60, "15:00"},
		{"14:30", 45, "15:15"},
		// переход через полночь
		{"23:00", 60, "00:00"},
		{"23:30", 60, "00:30"},
	}

	for _, tt := range tests {
		got, err := tt.in.AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %d min", tt.in, tt.minutes)
	}

	_, err := TimeString("").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("06:00").IsBefore("14:00"))
	assert.True(t, TimeString("14:00").IsAfter("06:00"))
	assert.False(t, TimeString("14:00").IsBefore("14:00"))
	assert.False(t, TimeString("14:00").IsAfter("14:00"))
}

func TestTimeString_Zero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("06:30")))
	assert.Equal(t, TimeString("06:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("14:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
