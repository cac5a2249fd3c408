// Package notify delivers order notifications: every event is persisted to the
// recipient's inbox, and, when push is enabled, forwarded to the recipient's
// registered Expo devices. Push failures never surface past this package.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/infra/repository"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
)

type Gateway struct {
	db      db.DBTX
	inbox   shared.NotificationRepository
	devices deviceTokenSource
	push    *expo.PushClient
	enabled bool
}

type deviceTokenSource interface {
	TokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

func NewGateway(cfg config.Config, pool db.DBTX) *Gateway {
	return &Gateway{
		db:      pool,
		inbox:   repository.NewNotificationRepository(),
		devices: &deviceTokens{db: pool},
		push:    expo.NewPushClient(nil),
		enabled: cfg.Push.Enabled,
	}
}

func (g *Gateway) Notify(ctx context.Context, event commands.NotificationEvent) error {
	var data []byte
	if event.Data != nil {
		b, err := json.Marshal(event.Data)
		if err != nil {
			return errs.Wrap(err, "failed to encode notification data")
		}
		data = b
	}

	_, err := g.inbox.Create(ctx, g.db, shared.NotificationRecord{
		UserID:  event.UserID,
		Type:    event.Type,
		Title:   event.Title,
		Message: event.Message,
		Data:    data,
	})
	if err != nil {
		return errs.Wrap(err, "failed to persist notification")
	}

	if g.enabled {
		g.sendPush(ctx, event)
	}
	return nil
}

func (g *Gateway) sendPush(ctx context.Context, event commands.NotificationEvent) {
	tokens, err := g.devices.TokensByUser(ctx, event.UserID)
	if err != nil {
		slog.Warn("failed to load device tokens", "user_id", event.UserID, "error", err)
		return
	}

	var valid []expo.ExponentPushToken
	for _, t := range tokens {
		token, err := expo.NewExponentPushToken(t)
		if err != nil {
			slog.Warn("skipping malformed push token", "user_id", event.UserID, "error", err)
			continue
		}
		valid = append(valid, token)
	}
	if len(valid) == 0 {
		return
	}

	stringData := make(map[string]string, len(event.Data))
	for k, v := range event.Data {
		stringData[k] = fmt.Sprintf("%v", v)
	}

	resp, err := g.push.Publish(&expo.PushMessage{
		To:       valid,
		Title:    event.Title,
		Body:     event.Message,
		Sound:    "default",
		Priority: expo.DefaultPriority,
		Data:     stringData,
	})
	if err != nil {
		slog.Warn("failed to publish push notification", "user_id", event.UserID, "error", err)
		return
	}
	if err := resp.ValidateResponse(); err != nil {
		slog.Warn("push notification rejected", "user_id", event.UserID, "error", err)
	}
}

type deviceTokens struct {
	db db.DBTX
}

func (d *deviceTokens) TokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := d.db.Query(ctx,
		`SELECT token FROM devices WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list device tokens", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, infra.WrapRepoErr("failed to scan device token", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate device tokens", err)
	}
	return tokens, nil
}
