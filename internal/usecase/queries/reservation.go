package queries

import (
	"context"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

const defaultListLimit = 50

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	RestaurantID   uuid.UUID  `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name"`
	AreaID         *uuid.UUID `json:"area_id,omitempty"`
	AreaName       *string    `json:"area_name,omitempty"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	PartySize      int        `json:"party_size"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	CustomerPhone  *string    `json:"customer_phone,omitempty"`
	Note           *string    `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID  `json:"id"`
	AreaID       *uuid.UUID `json:"area_id,omitempty"`
	AreaName     *string    `json:"area_name,omitempty"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	PartySize    int        `json:"party_size"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	CreatedAt    time.Time  `json:"created_at"`
}

type StatusCountView struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *booking.Date, limit, offset int32) ([]*ReservationListItem, error)
	CountByStatus(ctx context.Context, restaurantID uuid.UUID) ([]StatusCountView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *booking.Date, limit, offset int) ([]*ReservationListItem, error)
	CountByStatus(ctx context.Context, restaurantID uuid.UUID) ([]StatusCountView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *booking.Date, limit, offset int) ([]*ReservationListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := q.store.FindByRestaurant(ctx, restaurantID, date, int32(limit), int32(offset))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return items, nil
}

func (q *reservationQueriesImpl) CountByStatus(ctx context.Context, restaurantID uuid.UUID) ([]StatusCountView, error) {
	counts, err := q.store.CountByStatus(ctx, restaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count reservations")
	}
	return counts, nil
}
