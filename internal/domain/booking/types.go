package booking

import "time"

type ReservationType string

const (
	TypeMeal   ReservationType = "meal"
	TypeDrinks ReservationType = "drinks"
)

func (t ReservationType) String() string {
	return string(t)
}

func (t ReservationType) IsValid() bool {
	switch t {
	case TypeMeal, TypeDrinks:
		return true
	default:
		return false
	}
}

// Weekday is the stored weekday convention: 1=Monday .. 7=Sunday.
// It is converted to time.Weekday at exactly one point (RuleSet.allowsWeekday)
// so the stored convention never leaks into calendar code.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) Time() time.Weekday {
	if w == Sunday {
		return time.Sunday
	}
	return time.Weekday(w)
}

func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}
