package booking

import "time"

// GenerateDates returns the bookable calendar dates within the advance
// window [today, today+AdvanceBookingDays), ascending. A date is skipped
// when its weekday is not allowed, when it is explicitly blocked, or (for
// today only) when no slot survives the minimum-advance cutoff. An empty
// result is a legitimate state, not an error. Pure function of (rs, now).
func GenerateDates(rs RuleSet, now time.Time) ([]Date, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return availableDates(rs, now), nil
}

// availableDates assumes rs has already been validated.
func availableDates(rs RuleSet, now time.Time) []Date {
	today := DateOf(now)
	dates := make([]Date, 0, rs.AdvanceBookingDays)
	for i := 0; i < rs.AdvanceBookingDays; i++ {
		candidate := today.AddDays(i)
		if !rs.allowsWeekday(candidate.Weekday()) {
			continue
		}
		if rs.isBlocked(candidate) {
			continue
		}
		// Today is only offered while something on it is still bookable.
		if i == 0 && !hasSlotOn(rs, candidate, now) {
			continue
		}
		dates = append(dates, candidate)
	}
	return dates
}
