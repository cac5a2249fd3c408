package request

import (
	"strings"

	"tutorlink/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Message *string   `json:"message,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReviewRequest) ToInput() commands.CreateReviewInput {
	message := ""
	if r.Message != nil {
		message = strings.TrimSpace(*r.Message)
	}
	return commands.CreateReviewInput{
		OrderID: r.OrderID,
		Rating:  r.Rating,
		Message: message,
	}
}
