package review

import (
	"time"

	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotEligible   = errs.New("order is not eligible for review")
	ErrReviewAlreadyExists = errs.New("review already exists for this order")
)

// Review is one-to-one with a completed order.
type Review struct {
	id        uuid.UUID
	orderID   uuid.UUID
	learnerID uuid.UUID
	tutoryID  uuid.UUID
	rating    Rating
	message   Message
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(orderID, learnerID, tutoryID uuid.UUID, rating Rating, message Message, now time.Time) *Review {
	return &Review{
		id:        uuid.New(),
		orderID:   orderID,
		learnerID: learnerID,
		tutoryID:  tutoryID,
		rating:    rating,
		message:   message,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructReview(
	id, orderID, learnerID, tutoryID uuid.UUID,
	rating Rating,
	message Message,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:        id,
		orderID:   orderID,
		learnerID: learnerID,
		tutoryID:  tutoryID,
		rating:    rating,
		message:   message,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) OrderID() uuid.UUID   { return r.orderID }
func (r *Review) LearnerID() uuid.UUID { return r.learnerID }
func (r *Review) TutoryID() uuid.UUID  { return r.tutoryID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Message() Message     { return r.message }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
