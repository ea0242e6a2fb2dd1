package booking

import "time"

// GenerateSlots returns the bookable start times for date, ascending.
// A slot survives when its wall-clock instant (in now's location) is at
// least MinAdvanceHours after now. Opening after closing yields an empty
// result; a non-positive slot duration is a configuration defect.
// Pure function of (rs, date, now).
func GenerateSlots(rs RuleSet, date Date, now time.Time) ([]TimeOfDay, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return slotTimes(rs, date, now), nil
}

// slotTimes assumes rs has already been validated.
func slotTimes(rs RuleSet, date Date, now time.Time) []TimeOfDay {
	openMin := rs.OpeningTime.MinutesSinceMidnight()
	closeMin := rs.ClosingTime.MinutesSinceMidnight()
	if openMin > closeMin {
		return []TimeOfDay{}
	}

	cutoff := rs.minAdvanceCutoff(now)
	slots := make([]TimeOfDay, 0, (closeMin-openMin)/rs.SlotDurationMin+1)
	// Closing time itself is offered when the stepping lands on it exactly.
	for m := openMin; m <= closeMin; m += rs.SlotDurationMin {
		slot := timeOfDayFromMinutes(m)
		if date.At(slot, now.Location()).Before(cutoff) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func hasSlotOn(rs RuleSet, date Date, now time.Time) bool {
	return len(slotTimes(rs, date, now)) > 0
}
