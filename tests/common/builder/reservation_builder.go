//go:build unit

package builder

import (
	"time"

	"tablebook/internal/domain/booking"
	domreservation "tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RestaurantID  uuid.UUID
	AreaID        *uuid.UUID
	Date          string
	Time          string
	PartySize     int
	Type          string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Note          string
	Status        domreservation.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		RestaurantID:  uuid.New(),
		Date:          "2025-03-12",
		Time:          "18:30",
		PartySize:     2,
		Type:          "meal",
		CustomerName:  "Taro Yamada",
		CustomerEmail: "taro@example.com",
		CustomerPhone: "090-0000-0000",
		Note:          "window seat please",
		Status:        domreservation.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := booking.ParseTimeOfDay(b.Time)
	if err != nil {
		return nil, err
	}
	customer, err := domreservation.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(
		b.RestaurantID,
		b.AreaID,
		date,
		timeOfDay,
		b.PartySize,
		booking.ReservationType(b.Type),
		customer,
		domreservation.NewNote(b.Note),
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	var phone, note *string
	if b.CustomerPhone != "" {
		phone = &b.CustomerPhone
	}
	if b.Note != "" {
		note = &b.Note
	}
	return reqdto.CreateReservationRequest{
		RestaurantID:  b.RestaurantID,
		AreaID:        b.AreaID,
		Date:          b.Date,
		Time:          b.Time,
		PartySize:     b.PartySize,
		Type:          b.Type,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: phone,
		Note:          note,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	var phone, note *string
	if b.CustomerPhone != "" {
		phone = &b.CustomerPhone
	}
	if b.Note != "" {
		note = &b.Note
	}
	return &queries.ReservationView{
		ID:             uuid.New(),
		RestaurantID:   b.RestaurantID,
		RestaurantName: "Test Restaurant",
		AreaID:         b.AreaID,
		Date:           b.Date,
		Time:           b.Time,
		PartySize:      b.PartySize,
		Type:           b.Type,
		Status:         b.Status.String(),
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  phone,
		Note:           note,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
