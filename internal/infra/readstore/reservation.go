package readstore

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query, args, err := psql.
		Select(
			"rv.id", "rv.restaurant_id", "rst.name",
			"rv.area_id", "ra.name",
			"rv.reservation_date", "rv.reservation_time", "rv.party_size", "rv.reservation_type",
			"rv.status",
			"rv.customer_name", "rv.customer_email", "rv.customer_phone",
			"rv.note", "rv.created_at", "rv.updated_at",
		).
		From("reservations rv").
		Join("restaurants rst ON rst.id = rv.restaurant_id").
		LeftJoin("reservation_areas ra ON ra.id = rv.area_id").
		Where(sq.Eq{"rv.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation view query", err)
	}

	var (
		view       queries.ReservationView
		reservedOn time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.RestaurantID, &view.RestaurantName,
		&view.AreaID, &view.AreaName,
		&reservedOn, &view.Time, &view.PartySize, &view.Type,
		&view.Status,
		&view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.Note, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}

	view.Date = booking.DateOf(reservedOn).String()
	return &view, nil
}

func (r *ReservationReadStore) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *booking.Date, limit, offset int32) ([]*queries.ReservationListItem, error) {
	builder := psql.
		Select(
			"rv.id", "rv.area_id", "ra.name",
			"rv.reservation_date", "rv.reservation_time", "rv.party_size", "rv.reservation_type",
			"rv.status", "rv.customer_name", "rv.created_at",
		).
		From("reservations rv").
		LeftJoin("reservation_areas ra ON ra.id = rv.area_id").
		Where(sq.Eq{"rv.restaurant_id": restaurantID}).
		OrderBy("rv.reservation_date ASC", "rv.reservation_time ASC", "rv.created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if date != nil {
		builder = builder.Where(sq.Eq{"rv.reservation_date": date.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item       queries.ReservationListItem
			reservedOn time.Time
		)
		err := rows.Scan(
			&item.ID, &item.AreaID, &item.AreaName,
			&reservedOn, &item.Time, &item.PartySize, &item.Type,
			&item.Status, &item.CustomerName, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.Date = booking.DateOf(reservedOn).String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return items, nil
}

func (r *ReservationReadStore) CountByStatus(ctx context.Context, restaurantID uuid.UUID) ([]queries.StatusCountView, error) {
	query, args, err := psql.
		Select("status", "count(*)").
		From("reservations").
		Where(sq.Eq{"restaurant_id": restaurantID}).
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build status count query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations", err)
	}
	defer rows.Close()

	var counts []queries.StatusCountView
	for rows.Next() {
		var count queries.StatusCountView
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count row", err)
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status count rows", err)
	}
	return counts, nil
}
