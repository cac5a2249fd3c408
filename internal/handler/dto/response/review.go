package response

import (
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	LearnerName string    `json:"learner_name"`
	Rating      int       `json:"rating"`
	Message     *string   `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	resp := make([]*ReviewResponse, len(views))
	for i, v := range views {
		var r ReviewResponse
		_ = copier.Copy(&r, v)
		resp[i] = &r
	}
	return resp
}
