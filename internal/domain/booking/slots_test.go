//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotStrings(slots []booking.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	// A Monday well inside the advance window of every case below.
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("quarter-hour stepping includes closing time on exact landing", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.OpeningTime = mustTime(t, "17:00")
		rs.ClosingTime = mustTime(t, "20:45")
		rs.SlotDurationMin = 15

		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		require.NoError(t, err)
		require.Len(t, slots, 16)
		assert.Equal(t, "17:00", slots[0].String())
		assert.Equal(t, "20:45", slots[15].String())
	})

	t.Run("stepping that overshoots closing stops before it", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.OpeningTime = mustTime(t, "09:00")
		rs.ClosingTime = mustTime(t, "10:50")
		rs.SlotDurationMin = 30

		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		require.NoError(t, err)
		want := []string{"09:00", "09:30", "10:00", "10:30"}
		if diff := cmp.Diff(want, slotStrings(slots)); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("minimum advance trims today's earlier slots", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.OpeningTime = mustTime(t, "17:00")
		rs.ClosingTime = mustTime(t, "22:00")
		rs.SlotDurationMin = 60
		rs.MinAdvanceHours = 3

		// 16:00 today: cutoff is 19:00, so 17:00 and 18:00 fall away.
		lateAfternoon := time.Date(2025, time.March, 10, 16, 0, 0, 0, time.UTC)
		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-10"), lateAfternoon)
		require.NoError(t, err)
		want := []string{"19:00", "20:00", "21:00", "22:00"}
		assert.Equal(t, want, slotStrings(slots))
	})

	t.Run("slot exactly at the cutoff survives", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.OpeningTime = mustTime(t, "17:00")
		rs.ClosingTime = mustTime(t, "18:00")
		rs.SlotDurationMin = 60
		rs.MinAdvanceHours = 2

		at := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-10"), at)
		require.NoError(t, err)
		assert.Equal(t, []string{"17:00", "18:00"}, slotStrings(slots))
	})

	t.Run("advance cutoff never touches future dates", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.MinAdvanceHours = 12
		lateEvening := time.Date(2025, time.March, 10, 23, 0, 0, 0, time.UTC)

		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-12"), lateEvening)
		require.NoError(t, err)
		assert.NotEmpty(t, slots)
		assert.Equal(t, "09:00", slots[0].String())
	})

	t.Run("opening after closing yields empty", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.OpeningTime = mustTime(t, "22:00")
		rs.ClosingTime = mustTime(t, "09:00")

		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("opening equal to closing yields the single slot", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.OpeningTime = mustTime(t, "19:00")
		rs.ClosingTime = mustTime(t, "19:00")

		slots, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		require.NoError(t, err)
		assert.Equal(t, []string{"19:00"}, slotStrings(slots))
	})

	t.Run("non-positive slot duration is a configuration error", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		rs.SlotDurationMin = 0

		_, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		assert.ErrorIs(t, err, booking.ErrInvalidConfiguration)
	})

	t.Run("pure function of its inputs", func(t *testing.T) {
		rs := booking.DefaultRuleSet()
		first, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		require.NoError(t, err)
		second, err := booking.GenerateSlots(rs, mustDate(t, "2025-03-15"), now)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
