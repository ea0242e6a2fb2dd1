//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, 2, actual.PartySize())
		assert.Equal(t, "2025-03-12", actual.Date().String())
		assert.Equal(t, "18:30", actual.TimeOfDay().String())
		assert.Equal(t, "Taro Yamada", actual.Customer().Name())
		assert.True(t, actual.IsActive())
	})

	t.Run("rejects non-positive party size", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.PartySize = 0 }).
			BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrInvalidPartySize)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Type = "afternoon-tea" }).
			BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrInvalidReservationType)
	})

	t.Run("starts at combines date and time", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		at := actual.StartsAt(time.UTC)
		assert.Equal(t, 2025, at.Year())
		assert.Equal(t, time.March, at.Month())
		assert.Equal(t, 12, at.Day())
		assert.Equal(t, 18, at.Hour())
		assert.Equal(t, 30, at.Minute())
	})
}

func TestCustomer(t *testing.T) {
	t.Run("name and email are required", func(t *testing.T) {
		_, err := reservation.NewCustomer("", "a@example.com", "")
		assert.ErrorIs(t, err, reservation.ErrEmptyCustomerName)

		_, err = reservation.NewCustomer("   ", "a@example.com", "")
		assert.ErrorIs(t, err, reservation.ErrEmptyCustomerName)

		for _, email := range []string{"", "no-at-sign", "@leading", "trailing@"} {
			_, err := reservation.NewCustomer("Taro", email, "")
			assert.ErrorIs(t, err, reservation.ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		c, err := reservation.NewCustomer("  Taro  ", " taro@example.com ", " 090 ")
		require.NoError(t, err)
		assert.Equal(t, "Taro", c.Name())
		assert.Equal(t, "taro@example.com", c.Email())
		assert.Equal(t, "090", c.Phone())
	})
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    reservation.Status
		to      reservation.Status
		allowed bool
	}{
		{reservation.StatusPending, reservation.StatusConfirmed, true},
		{reservation.StatusPending, reservation.StatusCancelled, true},
		{reservation.StatusPending, reservation.StatusCompleted, false},
		{reservation.StatusPending, reservation.StatusPending, false},
		{reservation.StatusConfirmed, reservation.StatusCompleted, true},
		{reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{reservation.StatusConfirmed, reservation.StatusPending, false},
		{reservation.StatusCancelled, reservation.StatusPending, false},
		{reservation.StatusCancelled, reservation.StatusConfirmed, false},
		{reservation.StatusCompleted, reservation.StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	t.Run("happy lifecycle", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.TransitionTo(reservation.StatusConfirmed))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.True(t, r.IsActive())

		require.NoError(t, r.TransitionTo(reservation.StatusCompleted))
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		assert.False(t, r.IsActive())
	})

	t.Run("illegal move keeps current status", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		err = r.TransitionTo(reservation.StatusCompleted)
		assert.ErrorIs(t, err, reservation.ErrInvalidStatusTransition)
		assert.Equal(t, reservation.StatusPending, r.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		err = r.TransitionTo(reservation.Status("archived"))
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}
