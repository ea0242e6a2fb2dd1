package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"tablebook/internal/domain/booking"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRestaurantNotFound      = errs.New("restaurant not found")
	ErrAreaNotFound            = errs.New("reservation area not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationInput struct {
	RestaurantID  uuid.UUID
	AreaID        *uuid.UUID
	Date          booking.Date
	Time          booking.TimeOfDay
	PartySize     int
	Type          booking.ReservationType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Note          string
}

type RestaurantRepository interface {
	FindRestaurantPolicy(ctx context.Context, id uuid.UUID) (*booking.RestaurantPolicy, error)
	FindAreaPolicy(ctx context.Context, restaurantID, areaID uuid.UUID) (*booking.AreaPolicy, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte) error
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next reservation.Status) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	restaurantRepo     RestaurantRepository
	reservationRepo    ReservationRepository
	notificationRepo   NotificationRepository
	reservationQueries queries.ReservationQueries
	pool               *pgxpool.Pool
	clock              clock.Clock
}

func NewReservationCommands(
	restaurantRepo RestaurantRepository,
	reservationRepo ReservationRepository,
	notificationRepo NotificationRepository,
	reservationQueries queries.ReservationQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		restaurantRepo:     restaurantRepo,
		reservationRepo:    reservationRepo,
		notificationRepo:   notificationRepo,
		reservationQueries: reservationQueries,
		pool:               pool,
		clock:              clock,
	}
}

// Create validates the prospective reservation against the effective rules
// at submission time and persists it as pending. Rules may have changed since
// the client rendered its pickers, so the check always reruns here.
func (c *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	rest, err := c.restaurantRepo.FindRestaurantPolicy(ctx, input.RestaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, errs.Wrap(err, "failed to find restaurant")
	}

	var area *booking.AreaPolicy
	if input.AreaID != nil {
		area, err = c.restaurantRepo.FindAreaPolicy(ctx, input.RestaurantID, *input.AreaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrAreaNotFound
			}
			return nil, errs.Wrap(err, "failed to find reservation area")
		}
	}

	request := booking.Request{
		Date:      input.Date,
		Time:      input.Time,
		PartySize: input.PartySize,
		Type:      input.Type,
	}
	if err := booking.ValidateReservation(*rest, area, request, c.clock.Now()); err != nil {
		return nil, err
	}

	customer, err := reservation.NewCustomer(input.CustomerName, input.CustomerEmail, input.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := reservation.NewReservation(
		input.RestaurantID,
		input.AreaID,
		input.Date,
		input.Time,
		input.PartySize,
		input.Type,
		customer,
		reservation.NewNote(input.Note),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	reservationID, err := c.persistReservation(ctx, entity)
	if err != nil {
		return nil, err
	}

	view, err := c.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) persistReservation(ctx context.Context, entity *reservation.Reservation) (uuid.UUID, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	reservationID, err := c.reservationRepo.Create(ctx, tx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.enqueueCreatedNotification(ctx, tx, entity, reservationID); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservationID, nil
}

// UpdateStatus is the management side's lifecycle entry point. The row is
// locked for the duration of the transaction so concurrent transitions
// serialize at the database.
func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, next reservation.Status) (*queries.ReservationView, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	entity, err := c.reservationRepo.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := c.reservationRepo.UpdateStatus(ctx, tx, id, entity.Status()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) enqueueCreatedNotification(ctx context.Context, tx db.DBTX, entity *reservation.Reservation, reservationID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"restaurant_id":  entity.RestaurantID(),
		"date":           entity.Date().String(),
		"time":           entity.TimeOfDay().String(),
		"party_size":     entity.PartySize(),
		"customer_email": entity.Customer().Email(),
	})
	if err != nil {
		return err
	}
	return c.notificationRepo.CreateJob(ctx, tx, "email", "reservation_created", payload)
}
