//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date round-trips through String", func(t *testing.T) {
		d, err := booking.ParseDate("2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", d.String())
		assert.Equal(t, time.Monday, d.Weekday())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, in := range []string{"", "2025-3-10", "10-03-2025", "2025-13-01", "2025-02-30", "not a date"} {
			_, err := booking.ParseDate(in)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, "input %q", in)
		}
	})
}

func TestDateAddDays(t *testing.T) {
	d, err := booking.ParseDate("2025-02-27")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", d.AddDays(2).String(), "rolls over month end")
	assert.Equal(t, "2025-02-27", d.AddDays(0).String())

	leap, err := booking.ParseDate("2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", leap.AddDays(1).String(), "leap day")
}

func TestDateAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	d := booking.NewDate(2025, time.March, 10)
	tod, err := booking.NewTimeOfDay(17, 30)
	require.NoError(t, err)

	instant := d.At(tod, loc)
	assert.Equal(t, 17, instant.Hour())
	assert.Equal(t, 30, instant.Minute())
	assert.Equal(t, loc, instant.Location())
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		for in, want := range map[string]string{
			"00:00": "00:00",
			"09:05": "09:05",
			"23:59": "23:59",
		} {
			tod, err := booking.ParseTimeOfDay(in)
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, want, tod.String())
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, in := range []string{"", "9:00", "24:00", "12:60", "1200", "12-00", "ab:cd"} {
			_, err := booking.ParseTimeOfDay(in)
			assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay, "input %q", in)
		}
	})
}

func TestTimeOfDayOrdering(t *testing.T) {
	early, err := booking.NewTimeOfDay(9, 0)
	require.NoError(t, err)
	late, err := booking.NewTimeOfDay(21, 45)
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Equal(late))
	assert.True(t, early.Equal(early))
	assert.Equal(t, 21*60+45, late.MinutesSinceMidnight())
}

func TestWeekdayConversion(t *testing.T) {
	assert.Equal(t, time.Monday, booking.Monday.Time())
	assert.Equal(t, time.Saturday, booking.Saturday.Time())
	assert.Equal(t, time.Sunday, booking.Sunday.Time())
	assert.False(t, booking.Weekday(0).IsValid())
	assert.False(t, booking.Weekday(8).IsValid())
	assert.Len(t, booking.AllWeekdays(), 7)
}
