package repository

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var phone, note *string
	if p := res.Customer().Phone(); p != "" {
		phone = &p
	}
	if n := res.Note().String(); n != "" {
		note = &n
	}

	query, args, err := psql.
		Insert("reservations").
		Columns(
			"id", "restaurant_id", "area_id",
			"reservation_date", "reservation_time", "party_size", "reservation_type",
			"customer_name", "customer_email", "customer_phone",
			"status", "note",
		).
		Values(
			res.ID(), res.RestaurantID(), res.AreaID(),
			res.Date().String(), res.TimeOfDay().String(), res.PartySize(), res.Kind().String(),
			res.Customer().Name(), res.Customer().Email(), phone,
			res.Status().String(), note,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build reservation insert", err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return uuid.Nil, infra.WrapRepoErr("reservation references missing restaurant or area", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	query, args, err := psql.
		Select(
			"id", "restaurant_id", "area_id",
			"reservation_date", "reservation_time", "party_size", "reservation_type",
			"customer_name", "customer_email", "customer_phone",
			"status", "note", "created_at", "updated_at",
		).
		From("reservations").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	var (
		rowID, restaurantID  uuid.UUID
		areaID               *uuid.UUID
		reservedOn           time.Time
		timeStr              string
		partySize            int
		kindStr              string
		name, email          string
		phone, note          *string
		statusStr            string
		createdAt, updatedAt time.Time
	)
	err = tx.QueryRow(ctx, query, args...).Scan(
		&rowID, &restaurantID, &areaID,
		&reservedOn, &timeStr, &partySize, &kindStr,
		&name, &email, &phone,
		&statusStr, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	date := booking.DateOf(reservedOn)
	timeOfDay, err := booking.ParseTimeOfDay(timeStr)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation has malformed time column", err)
	}
	customer, err := reservation.NewCustomer(name, email, derefString(phone))
	if err != nil {
		return nil, infra.WrapRepoErr("reservation has malformed customer columns", err)
	}

	entity := reservation.ReconstructReservation(
		rowID, restaurantID, areaID,
		date, timeOfDay, partySize,
		booking.ReservationType(kindStr),
		customer,
		reservation.Status(statusStr),
		reservation.NewNote(derefString(note)),
		createdAt, updatedAt,
	)
	return entity, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	query, args, err := psql.
		Update("reservations").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build status update", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
