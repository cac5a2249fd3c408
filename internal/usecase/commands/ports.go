package commands

import (
	"context"

	"github.com/google/uuid"
)

// Notification event types surfaced to the other party on each order
// transition.
const (
	NotificationOrderCreated  = "order_created"
	NotificationOrderAccepted = "order_accepted"
	NotificationOrderDeclined = "order_declined"
)

type NotificationEvent struct {
	UserID  uuid.UUID
	Type    string
	Title   string
	Message string
	Data    map[string]any
}

// Notifier is the outbound notification gateway. Dispatch is fire-and-forget:
// implementations log failures and never return ones that should block a
// booking transition; callers ignore the error beyond logging.
type Notifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}
