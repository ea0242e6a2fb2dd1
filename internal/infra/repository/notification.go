package repository

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository enqueues outbox rows for the external delivery
// worker. Actual sending happens outside this service.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte) error {
	query, args, err := psql.
		Insert("notification_jobs").
		Columns("id", "kind", "topic", "payload", "status").
		Values(uuid.New(), kind, topic, payload, "queued").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification job insert", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
