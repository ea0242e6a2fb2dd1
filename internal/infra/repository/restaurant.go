package repository

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var ruleColumns = []string{
	"opening_time",
	"closing_time",
	"slot_duration_min",
	"advance_booking_days",
	"min_advance_hours",
	"min_party_size",
	"max_party_size",
	"allowed_weekdays",
	"blocked_dates",
	"meal_only",
}

// ruleRow is the nullable rule columns shared by restaurants and
// reservation_areas. NULL means "inherit" and maps to a nil override field.
type ruleRow struct {
	OpeningTime        *string
	ClosingTime        *string
	SlotDurationMin    *int
	AdvanceBookingDays *int
	MinAdvanceHours    *float64
	MinPartySize       *int
	MaxPartySize       *int
	AllowedWeekdays    []int32
	BlockedDates       []time.Time
	MealOnly           *bool
}

func (r ruleRow) toOverrides() (booking.RuleOverrides, error) {
	overrides := booking.RuleOverrides{
		SlotDurationMin:    r.SlotDurationMin,
		AdvanceBookingDays: r.AdvanceBookingDays,
		MinAdvanceHours:    r.MinAdvanceHours,
		MinPartySize:       r.MinPartySize,
		MaxPartySize:       r.MaxPartySize,
		MealOnly:           r.MealOnly,
	}

	if r.OpeningTime != nil {
		t, err := booking.ParseTimeOfDay(*r.OpeningTime)
		if err != nil {
			return booking.RuleOverrides{}, err
		}
		overrides.OpeningTime = &t
	}
	if r.ClosingTime != nil {
		t, err := booking.ParseTimeOfDay(*r.ClosingTime)
		if err != nil {
			return booking.RuleOverrides{}, err
		}
		overrides.ClosingTime = &t
	}
	if r.AllowedWeekdays != nil {
		weekdays := make([]booking.Weekday, len(r.AllowedWeekdays))
		for i, wd := range r.AllowedWeekdays {
			weekdays[i] = booking.Weekday(wd)
		}
		overrides.AllowedWeekdays = weekdays
	}
	if r.BlockedDates != nil {
		dates := make([]booking.Date, len(r.BlockedDates))
		for i, d := range r.BlockedDates {
			dates[i] = booking.DateOf(d)
		}
		overrides.BlockedDates = dates
	}
	return overrides, nil
}

type RestaurantRepository struct {
	db db.DBTX
}

func NewRestaurantRepository(db db.DBTX) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) FindRestaurantPolicy(ctx context.Context, id uuid.UUID) (*booking.RestaurantPolicy, error) {
	columns := append([]string{"id", "reservation_enabled"}, ruleColumns...)
	query, args, err := psql.
		Select(columns...).
		From("restaurants").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build restaurant query", err)
	}

	var (
		policy booking.RestaurantPolicy
		rules  ruleRow
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&policy.ID,
		&policy.ReservationEnabled,
		&rules.OpeningTime,
		&rules.ClosingTime,
		&rules.SlotDurationMin,
		&rules.AdvanceBookingDays,
		&rules.MinAdvanceHours,
		&rules.MinPartySize,
		&rules.MaxPartySize,
		&rules.AllowedWeekdays,
		&rules.BlockedDates,
		&rules.MealOnly,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant", err)
	}

	policy.Rules, err = rules.toOverrides()
	if err != nil {
		return nil, infra.WrapRepoErr("restaurant has malformed rule columns", err)
	}
	return &policy, nil
}

func (r *RestaurantRepository) FindAreaPolicy(ctx context.Context, restaurantID, areaID uuid.UUID) (*booking.AreaPolicy, error) {
	columns := append([]string{"id", "restaurant_id", "is_active", "dining_only"}, ruleColumns...)
	query, args, err := psql.
		Select(columns...).
		From("reservation_areas").
		Where(sq.Eq{"id": areaID, "restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build area query", err)
	}

	var (
		policy booking.AreaPolicy
		rules  ruleRow
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&policy.ID,
		&policy.RestaurantID,
		&policy.IsActive,
		&policy.DiningOnly,
		&rules.OpeningTime,
		&rules.ClosingTime,
		&rules.SlotDurationMin,
		&rules.AdvanceBookingDays,
		&rules.MinAdvanceHours,
		&rules.MinPartySize,
		&rules.MaxPartySize,
		&rules.AllowedWeekdays,
		&rules.BlockedDates,
		&rules.MealOnly,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation area not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation area", err)
	}

	policy.Overrides, err = rules.toOverrides()
	if err != nil {
		return nil, infra.WrapRepoErr("reservation area has malformed rule columns", err)
	}
	return &policy, nil
}
