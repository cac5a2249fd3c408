package request

import (
	"strings"
	"time"

	"tutorlink/internal/pkg/ptr"
	"tutorlink/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	TutoryID    uuid.UUID `json:"tutory_id" binding:"required"`
	SessionTime time.Time `json:"session_time" binding:"required"`
	TotalHours  int       `json:"total_hours" binding:"required,min=1,max=5"`
	Note        *string   `json:"note,omitempty"`
}

func (r CreateOrderRequest) ToInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		TutoryID:    r.TutoryID,
		SessionTime: r.SessionTime.UTC(),
		TotalHours:  r.TotalHours,
		Note:        strings.TrimSpace(ptr.ValueOr(r.Note, "")),
	}
}
