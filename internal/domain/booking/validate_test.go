//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReservation(t *testing.T) {
	// Monday 2025-03-10, mid-morning.
	now := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

	restaurantID := uuid.New()
	areaID := uuid.New()

	openRestaurant := func() booking.RestaurantPolicy {
		return booking.RestaurantPolicy{
			ID:                 restaurantID,
			ReservationEnabled: true,
			Rules:              booking.RuleOverrides{},
		}
	}
	activeArea := func() *booking.AreaPolicy {
		return &booking.AreaPolicy{
			ID:           areaID,
			RestaurantID: restaurantID,
			IsActive:     true,
		}
	}
	okRequest := func() booking.Request {
		return booking.Request{
			Date:      mustDate(t, "2025-03-12"),
			Time:      mustTime(t, "18:30"),
			PartySize: 2,
			Type:      booking.TypeMeal,
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, booking.ValidateReservation(openRestaurant(), nil, okRequest(), now))
		require.NoError(t, booking.ValidateReservation(openRestaurant(), activeArea(), okRequest(), now))
	})

	t.Run("disabled restaurant rejects everything first", func(t *testing.T) {
		rest := openRestaurant()
		rest.ReservationEnabled = false

		req := okRequest()
		req.PartySize = 99 // would also fail, but closed wins

		err := booking.ValidateReservation(rest, nil, req, now)
		assert.ErrorIs(t, err, booking.ErrRestaurantClosed)
	})

	t.Run("area belonging to another restaurant", func(t *testing.T) {
		area := activeArea()
		area.RestaurantID = uuid.New()

		err := booking.ValidateReservation(openRestaurant(), area, okRequest(), now)
		assert.ErrorIs(t, err, booking.ErrInvalidArea)
	})

	t.Run("inactive area", func(t *testing.T) {
		area := activeArea()
		area.IsActive = false

		err := booking.ValidateReservation(openRestaurant(), area, okRequest(), now)
		assert.ErrorIs(t, err, booking.ErrInvalidArea)
	})

	t.Run("unknown reservation type", func(t *testing.T) {
		req := okRequest()
		req.Type = booking.ReservationType("brunch")

		err := booking.ValidateReservation(openRestaurant(), nil, req, now)
		assert.ErrorIs(t, err, booking.ErrInvalidType)
	})

	t.Run("party size outside resolved range", func(t *testing.T) {
		rest := openRestaurant()
		rest.Rules.MaxPartySize = ptr.To(6)

		req := okRequest()
		req.PartySize = 7
		assert.ErrorIs(t, booking.ValidateReservation(rest, nil, req, now), booking.ErrPartySizeOutOfRange)

		req.PartySize = 0
		assert.ErrorIs(t, booking.ValidateReservation(rest, nil, req, now), booking.ErrPartySizeOutOfRange)

		req.PartySize = 6
		assert.NoError(t, booking.ValidateReservation(rest, nil, req, now))
	})

	t.Run("area override narrows the party range", func(t *testing.T) {
		area := activeArea()
		area.Overrides.MaxPartySize = ptr.To(4)

		req := okRequest()
		req.PartySize = 5

		assert.ErrorIs(t, booking.ValidateReservation(openRestaurant(), area, req, now), booking.ErrPartySizeOutOfRange)
		assert.NoError(t, booking.ValidateReservation(openRestaurant(), nil, req, now), "no area, restaurant range applies")
	})

	t.Run("date outside the advance window", func(t *testing.T) {
		req := okRequest()
		req.Date = mustDate(t, "2025-06-01")

		err := booking.ValidateReservation(openRestaurant(), nil, req, now)
		assert.ErrorIs(t, err, booking.ErrDateNotAvailable)
	})

	t.Run("date in the past", func(t *testing.T) {
		req := okRequest()
		req.Date = mustDate(t, "2025-03-09")

		err := booking.ValidateReservation(openRestaurant(), nil, req, now)
		assert.ErrorIs(t, err, booking.ErrDateNotAvailable)
	})

	t.Run("blocked date", func(t *testing.T) {
		rest := openRestaurant()
		rest.Rules.BlockedDates = []booking.Date{mustDate(t, "2025-03-12")}

		err := booking.ValidateReservation(rest, nil, okRequest(), now)
		assert.ErrorIs(t, err, booking.ErrDateNotAvailable)
	})

	t.Run("time off the slot grid", func(t *testing.T) {
		req := okRequest()
		req.Time = mustTime(t, "18:10")

		err := booking.ValidateReservation(openRestaurant(), nil, req, now)
		assert.ErrorIs(t, err, booking.ErrTimeNotAvailable)
	})

	t.Run("time inside the minimum advance", func(t *testing.T) {
		rest := openRestaurant()
		rest.Rules.MinAdvanceHours = ptr.To(5.0)

		req := okRequest()
		req.Date = mustDate(t, "2025-03-10")
		req.Time = mustTime(t, "12:00") // only 2h away

		err := booking.ValidateReservation(rest, nil, req, now)
		assert.ErrorIs(t, err, booking.ErrTimeNotAvailable)
	})

	t.Run("drinks rejected where meal only", func(t *testing.T) {
		rest := openRestaurant()
		rest.Rules.MealOnly = ptr.To(true)

		req := okRequest()
		req.Type = booking.TypeDrinks

		assert.ErrorIs(t, booking.ValidateReservation(rest, nil, req, now), booking.ErrDiningOnlyArea)

		req.Type = booking.TypeMeal
		assert.NoError(t, booking.ValidateReservation(rest, nil, req, now))
	})

	t.Run("drinks rejected in a dining only area", func(t *testing.T) {
		area := activeArea()
		area.DiningOnly = true

		req := okRequest()
		req.Type = booking.TypeDrinks

		assert.ErrorIs(t, booking.ValidateReservation(openRestaurant(), area, req, now), booking.ErrDiningOnlyArea)
	})

	t.Run("misconfigured rules surface as configuration error", func(t *testing.T) {
		rest := openRestaurant()
		rest.Rules.SlotDurationMin = ptr.To(0)

		err := booking.ValidateReservation(rest, nil, okRequest(), now)
		assert.ErrorIs(t, err, booking.ErrInvalidConfiguration)
	})

	t.Run("validator agrees with the generators", func(t *testing.T) {
		rest := openRestaurant()
		rest.Rules.OpeningTime = ptr.To(mustTime(t, "17:00"))
		rest.Rules.ClosingTime = ptr.To(mustTime(t, "20:45"))
		rest.Rules.SlotDurationMin = ptr.To(15)
		rest.Rules.AdvanceBookingDays = ptr.To(7)
		rest.Rules.AllowedWeekdays = []booking.Weekday{booking.Wednesday, booking.Saturday}

		rs := booking.Resolve(rest.Rules, nil)
		dates, err := booking.GenerateDates(rs, now)
		require.NoError(t, err)
		require.NotEmpty(t, dates)

		for _, date := range dates {
			slots, err := booking.GenerateSlots(rs, date, now)
			require.NoError(t, err)
			for _, slot := range slots {
				req := booking.Request{Date: date, Time: slot, PartySize: 2, Type: booking.TypeMeal}
				assert.NoError(t, booking.ValidateReservation(rest, nil, req, now),
					"generated %s %s must validate", date, slot)
			}
		}
	})
}
