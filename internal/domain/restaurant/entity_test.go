//go:build unit

package restaurant_test

import (
	"testing"

	"tablebook/internal/domain/booking"
	"tablebook/internal/domain/restaurant"
	"tablebook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := restaurant.NewRestaurant("Trattoria", true, booking.RuleOverrides{})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Trattoria", r.Name())
		assert.True(t, r.ReservationEnabled())
	})

	t.Run("name is trimmed and required", func(t *testing.T) {
		r, err := restaurant.NewRestaurant("  Trattoria  ", true, booking.RuleOverrides{})
		require.NoError(t, err)
		assert.Equal(t, "Trattoria", r.Name())

		_, err = restaurant.NewRestaurant("   ", true, booking.RuleOverrides{})
		assert.ErrorIs(t, err, restaurant.ErrEmptyName)
	})
}

func TestNewArea(t *testing.T) {
	parent, err := restaurant.NewRestaurant("Trattoria", true, booking.RuleOverrides{})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		a, err := restaurant.NewArea(parent.ID(), "Terrace", true, false, booking.RuleOverrides{})
		require.NoError(t, err)
		assert.True(t, a.BelongsTo(parent))
	})

	t.Run("requires a parent restaurant", func(t *testing.T) {
		_, err := restaurant.NewArea(uuid.Nil, "Terrace", true, false, booking.RuleOverrides{})
		assert.ErrorIs(t, err, restaurant.ErrMissingRestaurant)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := restaurant.NewArea(parent.ID(), "", true, false, booking.RuleOverrides{})
		assert.ErrorIs(t, err, restaurant.ErrEmptyName)
	})
}

func TestPolicyProjections(t *testing.T) {
	rules := booking.RuleOverrides{MaxPartySize: ptr.To(6)}
	r, err := restaurant.NewRestaurant("Trattoria", false, rules)
	require.NoError(t, err)

	policy := r.Policy()
	assert.Equal(t, r.ID(), policy.ID)
	assert.False(t, policy.ReservationEnabled)
	require.NotNil(t, policy.Rules.MaxPartySize)
	assert.Equal(t, 6, *policy.Rules.MaxPartySize)

	a, err := restaurant.NewArea(r.ID(), "Counter", true, true, booking.RuleOverrides{MaxPartySize: ptr.To(2)})
	require.NoError(t, err)

	areaPolicy := a.Policy()
	assert.Equal(t, r.ID(), areaPolicy.RestaurantID)
	assert.True(t, areaPolicy.IsActive)
	assert.True(t, areaPolicy.DiningOnly)
	require.NotNil(t, areaPolicy.Overrides.MaxPartySize)
	assert.Equal(t, 2, *areaPolicy.Overrides.MaxPartySize)
}
