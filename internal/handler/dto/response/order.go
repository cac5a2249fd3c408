package response

import (
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
	Price   int       `json:"price"`
}

type OrderResponse struct {
	ID               uuid.UUID `json:"id"`
	LearnerID        uuid.UUID `json:"learner_id"`
	LearnerName      string    `json:"learner_name"`
	TutoryID         uuid.UUID `json:"tutory_id"`
	TutoryName       string    `json:"tutory_name"`
	TutorID          uuid.UUID `json:"tutor_id"`
	TutorName        string    `json:"tutor_name"`
	SessionTime      time.Time `json:"session_time"`
	TotalHours       int       `json:"total_hours"`
	EstimatedEndTime time.Time `json:"estimated_end_time"`
	Price            int       `json:"price"`
	Status           string    `json:"status"`
	Note             *string   `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	resp := make([]*OrderResponse, len(views))
	for i, v := range views {
		resp[i] = FromOrderView(v)
	}
	return resp
}
