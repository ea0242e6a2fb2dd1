package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Rejection reasons. All are expected, user-correctable outcomes surfaced
// as data, never panics.
var (
	ErrRestaurantClosed    = errors.New("restaurant is not accepting reservations")
	ErrInvalidArea         = errors.New("invalid reservation area")
	ErrPartySizeOutOfRange = errors.New("party size out of range")
	ErrDateNotAvailable    = errors.New("date not available")
	ErrTimeNotAvailable    = errors.New("time not available")
	ErrDiningOnlyArea      = errors.New("area accepts dining reservations only")
	ErrInvalidType         = errors.New("invalid reservation type")
)

// RestaurantPolicy is the slice of a restaurant the validator needs.
type RestaurantPolicy struct {
	ID                 uuid.UUID
	ReservationEnabled bool
	Rules              RuleOverrides
}

// AreaPolicy is the slice of a reservation area the validator needs.
// DiningOnly is an explicit schema field, not a name-matching convention.
type AreaPolicy struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	IsActive     bool
	DiningOnly   bool
	Overrides    RuleOverrides
}

// Request is a prospective reservation as submitted by a customer.
type Request struct {
	Date      Date
	Time      TimeOfDay
	PartySize int
	Type      ReservationType
}

// ValidateReservation re-derives the effective rules and checks the request
// against them at submission time. It is the single choke point in front of
// every persisting path, so a stale client or a rule change racing the
// submission can never book outside policy. Checks short-circuit on the
// first failure; the generators themselves decide date and slot membership
// so validator and pickers can never disagree.
func ValidateReservation(rest RestaurantPolicy, area *AreaPolicy, req Request, now time.Time) error {
	if !rest.ReservationEnabled {
		return ErrRestaurantClosed
	}
	if area != nil && (area.RestaurantID != rest.ID || !area.IsActive) {
		return ErrInvalidArea
	}
	if !req.Type.IsValid() {
		return ErrInvalidType
	}

	var overrides *RuleOverrides
	if area != nil {
		overrides = &area.Overrides
	}
	rs := Resolve(rest.Rules, overrides)
	if err := rs.Validate(); err != nil {
		return err
	}

	if req.PartySize < rs.MinPartySize || req.PartySize > rs.MaxPartySize {
		return ErrPartySizeOutOfRange
	}
	if !containsDate(availableDates(rs, now), req.Date) {
		return ErrDateNotAvailable
	}
	if !containsTime(slotTimes(rs, req.Date, now), req.Time) {
		return ErrTimeNotAvailable
	}
	if req.Type == TypeDrinks {
		if rs.MealOnly || (area != nil && area.DiningOnly) {
			return ErrDiningOnlyArea
		}
	}
	return nil
}

func containsDate(dates []Date, d Date) bool {
	for _, candidate := range dates {
		if candidate.Equal(d) {
			return true
		}
	}
	return false
}

func containsTime(slots []TimeOfDay, t TimeOfDay) bool {
	for _, candidate := range slots {
		if candidate.Equal(t) {
			return true
		}
	}
	return false
}
