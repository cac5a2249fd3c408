package repository

import (
	"context"

	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, n shared.NotificationRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO notifications (id, user_id, type, title, message, data)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		uuid.New(), n.UserID, n.Type, n.Title, n.Message, nullableBytes(n.Data),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert notification", err)
	}
	return id, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) error {
	// COALESCE keeps the original read_at, so re-marking is idempotent.
	tag, err := dbtx.Exec(ctx,
		`UPDATE notifications SET read_at = COALESCE(read_at, now()) WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
