package reservation

import (
	"errors"
	"fmt"
	"time"

	"tablebook/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize        = errors.New("party size must be positive")
	ErrInvalidStatus           = errors.New("invalid reservation status")
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")
	ErrInvalidReservationType  = errors.New("invalid reservation type")
	ErrMissingDate             = errors.New("reservation date is required")
)

// Reservation is created once by the public booking flow with status
// pending. Every later mutation goes through a status transition guarded
// by Status.CanTransitionTo.
type Reservation struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	areaID       *uuid.UUID
	date         booking.Date
	timeOfDay    booking.TimeOfDay
	partySize    int
	kind         booking.ReservationType
	customer     Customer
	status       Status
	note         Note
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReservation(
	restaurantID uuid.UUID,
	areaID *uuid.UUID,
	date booking.Date,
	timeOfDay booking.TimeOfDay,
	partySize int,
	kind booking.ReservationType,
	customer Customer,
	note Note,
) (*Reservation, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReservationType, kind)
	}

	return &Reservation{
		id:           uuid.New(),
		restaurantID: restaurantID,
		areaID:       areaID,
		date:         date,
		timeOfDay:    timeOfDay,
		partySize:    partySize,
		kind:         kind,
		customer:     customer,
		status:       StatusPending,
		note:         note,
	}, nil
}

func ReconstructReservation(
	id, restaurantID uuid.UUID,
	areaID *uuid.UUID,
	date booking.Date,
	timeOfDay booking.TimeOfDay,
	partySize int,
	kind booking.ReservationType,
	customer Customer,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		restaurantID: restaurantID,
		areaID:       areaID,
		date:         date,
		timeOfDay:    timeOfDay,
		partySize:    partySize,
		kind:         kind,
		customer:     customer,
		status:       status,
		note:         note,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// TransitionTo moves the reservation through its lifecycle. Illegal moves
// (reviving a cancelled booking, completing a pending one) are rejected.
func (r *Reservation) TransitionTo(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, r.status, next)
	}
	r.status = next
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusPending || r.status == StatusConfirmed
}

// StartsAt combines the reservation's date and time into an instant in loc.
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return r.date.At(r.timeOfDay, loc)
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID       { return r.restaurantID }
func (r *Reservation) AreaID() *uuid.UUID            { return r.areaID }
func (r *Reservation) Date() booking.Date            { return r.date }
func (r *Reservation) TimeOfDay() booking.TimeOfDay  { return r.timeOfDay }
func (r *Reservation) PartySize() int                { return r.partySize }
func (r *Reservation) Kind() booking.ReservationType { return r.kind }
func (r *Reservation) Customer() Customer            { return r.customer }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) Note() Note                    { return r.note }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
