package request

import (
	"strings"

	"tablebook/internal/domain/booking"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RestaurantID  uuid.UUID  `json:"restaurant_id" binding:"required"`
	AreaID        *uuid.UUID `json:"area_id,omitempty"`
	Date          string     `json:"date" binding:"required"`
	Time          string     `json:"time" binding:"required"`
	PartySize     int        `json:"party_size" binding:"required,min=1"`
	Type          string     `json:"type" binding:"required,oneof=meal drinks"`
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"required,email"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	Note          *string    `json:"note,omitempty"`
}

// ToInput parses the wire-format date and time into domain values. Format
// errors surface as booking.ErrInvalidDate / booking.ErrInvalidTimeOfDay.
func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	timeOfDay, err := booking.ParseTimeOfDay(r.Time)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	input := commands.CreateReservationInput{
		RestaurantID:  r.RestaurantID,
		AreaID:        r.AreaID,
		Date:          date,
		Time:          timeOfDay,
		PartySize:     r.PartySize,
		Type:          booking.ReservationType(r.Type),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
	}
	if r.CustomerPhone != nil {
		input.CustomerPhone = strings.TrimSpace(*r.CustomerPhone)
	}
	if r.Note != nil {
		input.Note = strings.TrimSpace(*r.Note)
	}
	return input, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

func (r UpdateReservationStatusRequest) ToStatus() reservation.Status {
	return reservation.Status(r.Status)
}
