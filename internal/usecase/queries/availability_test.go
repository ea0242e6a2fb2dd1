//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/ptr"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPolicyStore serves fixed policies keyed by ID.
type stubPolicyStore struct {
	restaurants map[uuid.UUID]*booking.RestaurantPolicy
	areas       map[uuid.UUID]*booking.AreaPolicy
}

func (s *stubPolicyStore) FindRestaurantPolicy(_ context.Context, id uuid.UUID) (*booking.RestaurantPolicy, error) {
	if p, ok := s.restaurants[id]; ok {
		return p, nil
	}
	return nil, infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
}

func (s *stubPolicyStore) FindAreaPolicy(_ context.Context, restaurantID, areaID uuid.UUID) (*booking.AreaPolicy, error) {
	if p, ok := s.areas[areaID]; ok && p.RestaurantID == restaurantID {
		return p, nil
	}
	return nil, infra.WrapRepoErr("area not found", nil, infra.KindNotFound)
}

func TestAvailabilityQueries(t *testing.T) {
	// Monday 2025-03-10, mid-morning.
	now := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	restaurantID := uuid.New()
	areaID := uuid.New()

	newFixture := func() (*stubPolicyStore, queries.AvailabilityQueries) {
		store := &stubPolicyStore{
			restaurants: map[uuid.UUID]*booking.RestaurantPolicy{
				restaurantID: {
					ID:                 restaurantID,
					ReservationEnabled: true,
					Rules: booking.RuleOverrides{
						OpeningTime:        ptr.To(mustTime(t, "17:00")),
						ClosingTime:        ptr.To(mustTime(t, "20:45")),
						SlotDurationMin:    ptr.To(15),
						AdvanceBookingDays: ptr.To(3),
					},
				},
			},
			areas: map[uuid.UUID]*booking.AreaPolicy{
				areaID: {
					ID:           areaID,
					RestaurantID: restaurantID,
					IsActive:     true,
					Overrides: booking.RuleOverrides{
						MaxPartySize: ptr.To(4),
					},
				},
			},
		}
		return store, queries.NewAvailabilityQueries(store, clock.NewMockClock(now))
	}

	t.Run("available dates", func(t *testing.T) {
		_, q := newFixture()

		dates, err := q.AvailableDates(ctx, restaurantID, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-10", "2025-03-11", "2025-03-12"}, dates)
	})

	t.Run("available slots use resolved rules", func(t *testing.T) {
		_, q := newFixture()

		slots, err := q.AvailableSlots(ctx, restaurantID, nil, mustDate(t, "2025-03-11"))
		require.NoError(t, err)
		require.Len(t, slots, 16)
		assert.Equal(t, "17:00", slots[0])
		assert.Equal(t, "20:45", slots[15])
	})

	t.Run("party size options honor area override", func(t *testing.T) {
		_, q := newFixture()

		base, err := q.PartySizeOptions(ctx, restaurantID, nil)
		require.NoError(t, err)
		require.Len(t, base, 13, "restaurant default 1..12 plus overflow")

		narrowed, err := q.PartySizeOptions(ctx, restaurantID, &areaID)
		require.NoError(t, err)
		require.Len(t, narrowed, 4)
		assert.Equal(t, "4", narrowed[3].Label)
		assert.False(t, narrowed[3].Overflow)
	})

	t.Run("disabled restaurant yields empty results", func(t *testing.T) {
		store, q := newFixture()
		store.restaurants[restaurantID].ReservationEnabled = false

		dates, err := q.AvailableDates(ctx, restaurantID, nil)
		require.NoError(t, err)
		assert.Empty(t, dates)

		slots, err := q.AvailableSlots(ctx, restaurantID, nil, mustDate(t, "2025-03-11"))
		require.NoError(t, err)
		assert.Empty(t, slots)

		options, err := q.PartySizeOptions(ctx, restaurantID, nil)
		require.NoError(t, err)
		assert.Empty(t, options)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		_, q := newFixture()

		_, err := q.AvailableDates(ctx, uuid.New(), nil)
		assert.ErrorIs(t, err, queries.ErrRestaurantNotFound)
	})

	t.Run("unknown area", func(t *testing.T) {
		_, q := newFixture()

		other := uuid.New()
		_, err := q.AvailableDates(ctx, restaurantID, &other)
		assert.ErrorIs(t, err, queries.ErrAreaNotFound)
	})

	t.Run("inactive area is treated as absent", func(t *testing.T) {
		store, q := newFixture()
		store.areas[areaID].IsActive = false

		_, err := q.AvailableDates(ctx, restaurantID, &areaID)
		assert.ErrorIs(t, err, queries.ErrAreaNotFound)
	})

	t.Run("clock advancing past closing drops today", func(t *testing.T) {
		store := &stubPolicyStore{
			restaurants: map[uuid.UUID]*booking.RestaurantPolicy{
				restaurantID: {
					ID:                 restaurantID,
					ReservationEnabled: true,
					Rules: booking.RuleOverrides{
						ClosingTime:        ptr.To(mustTime(t, "22:00")),
						MinAdvanceHours:    ptr.To(3.0),
						AdvanceBookingDays: ptr.To(2),
					},
				},
			},
		}
		mock := clock.NewMockClock(now)
		q := queries.NewAvailabilityQueries(store, mock)

		dates, err := q.AvailableDates(ctx, restaurantID, nil)
		require.NoError(t, err)
		assert.Contains(t, dates, "2025-03-10")

		// 20:00: the 3h minimum pushes past closing.
		mock.Set(time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC))
		dates, err = q.AvailableDates(ctx, restaurantID, nil)
		require.NoError(t, err)
		assert.NotContains(t, dates, "2025-03-10")
		assert.Contains(t, dates, "2025-03-11")
	})
}

func mustTime(t *testing.T, s string) booking.TimeOfDay {
	t.Helper()
	tod, err := booking.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}
