package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type NotificationQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*NotificationView, error) {
	return q.store.FindByUserID(ctx, userID, unreadOnly)
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return q.store.CountUnread(ctx, userID)
}
