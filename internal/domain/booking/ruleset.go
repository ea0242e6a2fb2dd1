package booking

import (
	"errors"
	"fmt"
	"time"

	"tablebook/internal/pkg/patch"
)

var ErrInvalidConfiguration = errors.New("invalid booking configuration")

// System defaults applied when neither the area nor the restaurant sets a field.
const (
	DefaultSlotDurationMin    = 30
	DefaultAdvanceBookingDays = 15
	DefaultMinAdvanceHours    = 0
	DefaultMinPartySize       = 1
	DefaultMaxPartySize       = 12
)

var (
	defaultOpeningTime = TimeOfDay{minutes: 9 * 60}  // 09:00
	defaultClosingTime = TimeOfDay{minutes: 22 * 60} // 22:00
)

// RuleOverrides is a partial rule set. Nil fields inherit from the next level
// up: area overrides fall back to restaurant defaults, restaurant defaults
// fall back to the system defaults above.
type RuleOverrides struct {
	OpeningTime        *TimeOfDay
	ClosingTime        *TimeOfDay
	SlotDurationMin    *int
	AdvanceBookingDays *int
	MinAdvanceHours    *float64
	MinPartySize       *int
	MaxPartySize       *int
	AllowedWeekdays    []Weekday
	BlockedDates       []Date
	MealOnly           *bool
}

// RuleSet is the fully resolved booking policy for one restaurant+area
// combination. It is a derived view recomputed per request, never persisted.
type RuleSet struct {
	OpeningTime        TimeOfDay
	ClosingTime        TimeOfDay
	SlotDurationMin    int
	AdvanceBookingDays int
	MinAdvanceHours    float64
	MinPartySize       int
	MaxPartySize       int
	AllowedWeekdays    []Weekday
	BlockedDates       []Date
	MealOnly           bool
}

func DefaultRuleSet() RuleSet {
	return RuleSet{
		OpeningTime:        defaultOpeningTime,
		ClosingTime:        defaultClosingTime,
		SlotDurationMin:    DefaultSlotDurationMin,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		MinAdvanceHours:    DefaultMinAdvanceHours,
		MinPartySize:       DefaultMinPartySize,
		MaxPartySize:       DefaultMaxPartySize,
		AllowedWeekdays:    AllWeekdays(),
		BlockedDates:       nil,
		MealOnly:           false,
	}
}

// Resolve merges an area's partial overrides onto the restaurant's defaults,
// field by field, and fills the remaining gaps with the system defaults.
// Resolution always succeeds; validity is checked separately by Validate.
func Resolve(defaults RuleOverrides, area *RuleOverrides) RuleSet {
	merged := defaults
	if area != nil {
		merged = RuleOverrides{
			OpeningTime:        coalescePtr(area.OpeningTime, defaults.OpeningTime),
			ClosingTime:        coalescePtr(area.ClosingTime, defaults.ClosingTime),
			SlotDurationMin:    coalescePtr(area.SlotDurationMin, defaults.SlotDurationMin),
			AdvanceBookingDays: coalescePtr(area.AdvanceBookingDays, defaults.AdvanceBookingDays),
			MinAdvanceHours:    coalescePtr(area.MinAdvanceHours, defaults.MinAdvanceHours),
			MinPartySize:       coalescePtr(area.MinPartySize, defaults.MinPartySize),
			MaxPartySize:       coalescePtr(area.MaxPartySize, defaults.MaxPartySize),
			AllowedWeekdays:    patch.CoalesceSlice(area.AllowedWeekdays, defaults.AllowedWeekdays),
			BlockedDates:       patch.CoalesceSlice(area.BlockedDates, defaults.BlockedDates),
			MealOnly:           coalescePtr(area.MealOnly, defaults.MealOnly),
		}
	}

	rs := RuleSet{
		OpeningTime:        patch.Coalesce(merged.OpeningTime, defaultOpeningTime),
		ClosingTime:        patch.Coalesce(merged.ClosingTime, defaultClosingTime),
		SlotDurationMin:    patch.Coalesce(merged.SlotDurationMin, DefaultSlotDurationMin),
		AdvanceBookingDays: patch.Coalesce(merged.AdvanceBookingDays, DefaultAdvanceBookingDays),
		MinAdvanceHours:    patch.Coalesce(merged.MinAdvanceHours, float64(DefaultMinAdvanceHours)),
		MinPartySize:       patch.Coalesce(merged.MinPartySize, DefaultMinPartySize),
		MaxPartySize:       patch.Coalesce(merged.MaxPartySize, DefaultMaxPartySize),
		AllowedWeekdays:    merged.AllowedWeekdays,
		BlockedDates:       merged.BlockedDates,
		MealOnly:           patch.Coalesce(merged.MealOnly, false),
	}
	if len(rs.AllowedWeekdays) == 0 {
		rs.AllowedWeekdays = AllWeekdays()
	}
	return rs
}

// Validate reports configuration defects. These are programmer/operator
// errors, not user-correctable rejections: a non-positive slot duration
// would otherwise make slot generation loop forever.
func (rs RuleSet) Validate() error {
	if rs.SlotDurationMin <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidConfiguration, rs.SlotDurationMin)
	}
	if rs.AdvanceBookingDays <= 0 {
		return fmt.Errorf("%w: advance booking days must be positive, got %d", ErrInvalidConfiguration, rs.AdvanceBookingDays)
	}
	if rs.MinAdvanceHours < 0 {
		return fmt.Errorf("%w: min advance hours must not be negative, got %g", ErrInvalidConfiguration, rs.MinAdvanceHours)
	}
	if rs.MinPartySize < 1 {
		return fmt.Errorf("%w: min party size must be positive, got %d", ErrInvalidConfiguration, rs.MinPartySize)
	}
	if rs.MinPartySize > rs.MaxPartySize {
		return fmt.Errorf("%w: min party size %d exceeds max party size %d", ErrInvalidConfiguration, rs.MinPartySize, rs.MaxPartySize)
	}
	for _, wd := range rs.AllowedWeekdays {
		if !wd.IsValid() {
			return fmt.Errorf("%w: weekday code %d outside 1..7", ErrInvalidConfiguration, int(wd))
		}
	}
	return nil
}

// allowsWeekday is the single point where the stored 1=Monday..7=Sunday
// convention meets time.Weekday.
func (rs RuleSet) allowsWeekday(wd time.Weekday) bool {
	for _, allowed := range rs.AllowedWeekdays {
		if allowed.Time() == wd {
			return true
		}
	}
	return false
}

func (rs RuleSet) isBlocked(d Date) bool {
	for _, blocked := range rs.BlockedDates {
		if blocked.Equal(d) {
			return true
		}
	}
	return false
}

// minAdvanceCutoff is the earliest instant a slot may start at.
func (rs RuleSet) minAdvanceCutoff(now time.Time) time.Time {
	return now.Add(time.Duration(rs.MinAdvanceHours * float64(time.Hour)))
}

func coalescePtr[T any](override, fallback *T) *T {
	if override != nil {
		return override
	}
	return fallback
}
