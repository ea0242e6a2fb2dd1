package queries

import (
	"context"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRestaurantNotFound = errs.New("restaurant not found")
	ErrAreaNotFound       = errs.New("reservation area not found")
)

type PartySizeOptionView struct {
	Size     int    `json:"size"`
	Label    string `json:"label"`
	Overflow bool   `json:"overflow"`
}

// RestaurantPolicyStore supplies the rule inputs the generators run on.
type RestaurantPolicyStore interface {
	FindRestaurantPolicy(ctx context.Context, id uuid.UUID) (*booking.RestaurantPolicy, error)
	FindAreaPolicy(ctx context.Context, restaurantID, areaID uuid.UUID) (*booking.AreaPolicy, error)
}

type AvailabilityQueries interface {
	AvailableDates(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID) ([]string, error)
	AvailableSlots(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID, date booking.Date) ([]string, error)
	PartySizeOptions(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID) ([]PartySizeOptionView, error)
}

type availabilityQueriesImpl struct {
	store RestaurantPolicyStore
	clock clock.Clock
}

func NewAvailabilityQueries(store RestaurantPolicyStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clock}
}

func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID) ([]string, error) {
	rs, enabled, err := q.effectiveRules(ctx, restaurantID, areaID)
	if err != nil {
		return nil, err
	}
	if !enabled {
		// A fully closed restaurant offers nothing; that is a state, not an error.
		return []string{}, nil
	}

	dates, err := booking.GenerateDates(rs, q.clock.Now())
	if err != nil {
		return nil, err
	}

	result := make([]string, len(dates))
	for i, d := range dates {
		result[i] = d.String()
	}
	return result, nil
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID, date booking.Date) ([]string, error) {
	rs, enabled, err := q.effectiveRules(ctx, restaurantID, areaID)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return []string{}, nil
	}

	slots, err := booking.GenerateSlots(rs, date, q.clock.Now())
	if err != nil {
		return nil, err
	}

	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result, nil
}

func (q *availabilityQueriesImpl) PartySizeOptions(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID) ([]PartySizeOptionView, error) {
	rs, enabled, err := q.effectiveRules(ctx, restaurantID, areaID)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return []PartySizeOptionView{}, nil
	}

	options, err := booking.PartySizeOptions(rs)
	if err != nil {
		return nil, err
	}

	result := make([]PartySizeOptionView, len(options))
	for i, o := range options {
		result[i] = PartySizeOptionView{
			Size:     o.Size,
			Label:    o.Label(),
			Overflow: o.Overflow,
		}
	}
	return result, nil
}

func (q *availabilityQueriesImpl) effectiveRules(ctx context.Context, restaurantID uuid.UUID, areaID *uuid.UUID) (booking.RuleSet, bool, error) {
	rest, err := q.store.FindRestaurantPolicy(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.RuleSet{}, false, ErrRestaurantNotFound
		}
		return booking.RuleSet{}, false, errs.Wrap(err, "failed to find restaurant")
	}

	var overrides *booking.RuleOverrides
	if areaID != nil {
		area, err := q.store.FindAreaPolicy(ctx, restaurantID, *areaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.RuleSet{}, false, ErrAreaNotFound
			}
			return booking.RuleSet{}, false, errs.Wrap(err, "failed to find reservation area")
		}
		if !area.IsActive {
			return booking.RuleSet{}, false, ErrAreaNotFound
		}
		overrides = &area.Overrides
	}

	return booking.Resolve(rest.Rules, overrides), rest.ReservationEnabled, nil
}
