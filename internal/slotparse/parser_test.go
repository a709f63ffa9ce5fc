package slotparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		in        string
		wantStart types.TimeString
		wantEnd   types.TimeString
	}{
		{"m1", "06:00", "07:00"},
		{"m5", "10:00", "11:00"},
		{"m6", "11:00", "12:00"},
		{"a1", "12:00", "13:00"},
		{"a2", "13:00", "14:00"},
		{"a6", "17:00", "18:00"},
		{"e1", "18:00", "19:00"},
		{"e3", "20:00", "21:00"},
		{"e6", "23:00", "00:00"},
		{"E2", "19:00", "20:00"},
		{"M1", "06:00", "07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := ParseSection(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestParseSection_Invalid(t *testing.T) {
	for _, in := range []string{"x1", "m0", "m", "14:00", ""} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSection(in)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want types.TimeString
	}{
		{"14:00", "14:00"},
		{"06:30", "06:30"},
		{"6:30", "06:30"},
		{"2:00 PM", "14:00"},
		{"2:00PM", "14:00"},
		{"2:00 pm", "14:00"},
		{"11:00 PM", "23:00"},
		{"12:00 PM", "12:00"},
		{"12:00 AM", "00:00"},
		{"12:30 AM", "00:30"},
		{"10:00 AM", "10:00"},
		{"9 AM", "09:00"},
		{"23:00", "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "25:00", "14:99", "abc"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClock(in)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in        string
		wantStart types.TimeString
		wantEnd   types.TimeString
	}{
		{"14:00-15:00", "14:00", "15:00"},
		{"14:00 - 15:00", "14:00", "15:00"},
		{"10:00 AM-11:00 AM", "10:00", "11:00"},
		{"10:00 AM - 11:00 AM", "10:00", "11:00"},
		// обрезанный диапазон достраивается как start+1ч
		{"10:00 AM-", "10:00", "11:00"},
		{"14:00-", "14:00", "15:00"},
		// переход через полночь
		{"11:00 PM-", "23:00", "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestParse_Precedence(t *testing.T) {
	// Код секции побеждает всё остальное
	w, err := Parse("a2")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), w.Start)
	assert.Equal(t, types.TimeString("14:00"), w.End)

	// Диапазон
	w, err = Parse("13:00-14:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), w.Start)
	assert.Equal(t, types.TimeString("14:00"), w.End)

	// Одиночное время достраивается часовым окном
	w, err = Parse("1:00 PM")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), w.Start)
	assert.Equal(t, types.TimeString("14:00"), w.End)
}

func TestParse_EquivalentFormsAgree(t *testing.T) {
	// Одно и то же окно во всех принимаемых записях
	forms := []string{"a2", "13:00-14:00", "1:00 PM-2:00 PM", "13:00", "1:00 PM"}

	for _, form := range forms {
		w, err := Parse(form)
		require.NoError(t, err, "form %q", form)
		assert.Equal(t, types.TimeString("13:00"), w.Start, "form %q", form)
		assert.Equal(t, types.TimeString("14:00"), w.End, "form %q", form)
	}
}

func TestParse_Idempotent(t *testing.T) {
	// Канонический вывод парсится в самого себя
	inputs := []string{"a2", "2:00 PM", "14:00-15:00", "e6", "11:00 PM"}

	for _, in := range inputs {
		first, err := Parse(in)
		require.NoError(t, err)

		second, err := Parse(string(first.Start) + "-" + string(first.End))
		require.NoError(t, err)
		assert.Equal(t, first, second, "input %q", in)
	}
}

func TestParse_MidnightWrap(t *testing.T) {
	w, err := Parse("e6")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:00"), w.Start)
	assert.Equal(t, types.TimeString("00:00"), w.End)

	w, err = Parse("11:00 PM")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:00"), w.Start)
	assert.Equal(t, types.TimeString("00:00"), w.End)
}

func TestParse_Unparseable(t *testing.T) {
	for _, in := range []string{"", "garbage", "x9", "??:??"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnparseable, "input %q", in)
	}
}

func TestNormalize_FallsBackToDefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultWindow, Normalize("garbage"))
	assert.Equal(t, DefaultWindow, Normalize(""))

	// Разборчивый вход не деградирует
	w := Normalize("a2")
	assert.Equal(t, types.TimeString("13:00"), w.Start)
}

func TestIdentifierClassifiers(t *testing.T) {
	assert.True(t, IsObjectID("65f1a2b3c4d5e6f7a8b9c0d1"))
	assert.False(t, IsObjectID("65f1a2b3"))
	assert.False(t, IsObjectID("a2"))

	assert.True(t, IsNumericID("42"))
	assert.False(t, IsNumericID("a2"))
	assert.False(t, IsNumericID(""))

	assert.True(t, IsSectionCode("m5"))
	assert.True(t, IsSectionCode("E3"))
	assert.False(t, IsSectionCode("14:00"))
	// 24-hex не путается с кодом секции
	assert.False(t, IsSectionCode("65f1a2b3c4d5e6f7a8b9c0d1"))
}
