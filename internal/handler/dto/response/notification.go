package response

import (
	"encoding/json"
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	resp := make([]*NotificationResponse, len(views))
	for i, v := range views {
		resp[i] = &NotificationResponse{
			ID:        v.ID,
			Type:      v.Type,
			Title:     v.Title,
			Message:   v.Message,
			Data:      json.RawMessage(v.Data),
			ReadAt:    v.ReadAt,
			CreatedAt: v.CreatedAt,
		}
	}
	return resp
}
