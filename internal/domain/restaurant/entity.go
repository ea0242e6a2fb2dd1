package restaurant

import (
	"errors"
	"strings"
	"time"

	"tablebook/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrAreaWrongParent   = errors.New("area does not belong to restaurant")
	ErrMissingRestaurant = errors.New("restaurant id is required")
)

// Restaurant owns the default booking rules. Areas override them per field.
type Restaurant struct {
	id                 uuid.UUID
	name               string
	reservationEnabled bool
	rules              booking.RuleOverrides
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRestaurant(name string, reservationEnabled bool, rules booking.RuleOverrides) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Restaurant{
		id:                 uuid.New(),
		name:               name,
		reservationEnabled: reservationEnabled,
		rules:              rules,
	}, nil
}

func ReconstructRestaurant(
	id uuid.UUID,
	name string,
	reservationEnabled bool,
	rules booking.RuleOverrides,
	createdAt, updatedAt time.Time,
) *Restaurant {
	return &Restaurant{
		id:                 id,
		name:               name,
		reservationEnabled: reservationEnabled,
		rules:              rules,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (r *Restaurant) ID() uuid.UUID                { return r.id }
func (r *Restaurant) Name() string                 { return r.name }
func (r *Restaurant) ReservationEnabled() bool     { return r.reservationEnabled }
func (r *Restaurant) Rules() booking.RuleOverrides { return r.rules }
func (r *Restaurant) CreatedAt() time.Time         { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time         { return r.updatedAt }

// Policy projects the restaurant into the shape the booking engine consumes.
func (r *Restaurant) Policy() booking.RestaurantPolicy {
	return booking.RestaurantPolicy{
		ID:                 r.id,
		ReservationEnabled: r.reservationEnabled,
		Rules:              r.rules,
	}
}

// Area is a named sub-section of a restaurant with partial rule overrides.
// A nil override field inherits the restaurant's value.
type Area struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	name         string
	isActive     bool
	diningOnly   bool
	overrides    booking.RuleOverrides
	createdAt    time.Time
	updatedAt    time.Time
}

func NewArea(restaurantID uuid.UUID, name string, isActive, diningOnly bool, overrides booking.RuleOverrides) (*Area, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrMissingRestaurant
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Area{
		id:           uuid.New(),
		restaurantID: restaurantID,
		name:         name,
		isActive:     isActive,
		diningOnly:   diningOnly,
		overrides:    overrides,
	}, nil
}

func ReconstructArea(
	id, restaurantID uuid.UUID,
	name string,
	isActive, diningOnly bool,
	overrides booking.RuleOverrides,
	createdAt, updatedAt time.Time,
) *Area {
	return &Area{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		isActive:     isActive,
		diningOnly:   diningOnly,
		overrides:    overrides,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Area) ID() uuid.UUID                    { return a.id }
func (a *Area) RestaurantID() uuid.UUID          { return a.restaurantID }
func (a *Area) Name() string                     { return a.name }
func (a *Area) IsActive() bool                   { return a.isActive }
func (a *Area) DiningOnly() bool                 { return a.diningOnly }
func (a *Area) Overrides() booking.RuleOverrides { return a.overrides }
func (a *Area) CreatedAt() time.Time             { return a.createdAt }
func (a *Area) UpdatedAt() time.Time             { return a.updatedAt }

func (a *Area) BelongsTo(r *Restaurant) bool {
	return a.restaurantID == r.ID()
}

func (a *Area) Policy() booking.AreaPolicy {
	return booking.AreaPolicy{
		ID:           a.id,
		RestaurantID: a.restaurantID,
		IsActive:     a.isActive,
		DiningOnly:   a.diningOnly,
		Overrides:    a.overrides,
	}
}
