package readstore

import (
	"context"

	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(pool db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: pool}
}

func (r *NotificationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*queries.NotificationView, error) {
	query := `
		SELECT id, type, title, message, data, read_at, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var view queries.NotificationView
		if err := rows.Scan(
			&view.ID, &view.Type, &view.Title, &view.Message,
			&view.Data, &view.ReadAt, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return views, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
