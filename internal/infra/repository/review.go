package repository

import (
	"context"

	"tutorlink/internal/domain/review"
	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

var _ shared.ReviewRepository = (*ReviewRepository)(nil)

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO reviews (id, order_id, learner_id, tutory_id, rating, message, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		 RETURNING id`,
		rev.ID(), rev.OrderID(), rev.LearnerID(), rev.TutoryID(),
		rev.Rating().Value(), rev.Message().String(), rev.CreatedAt(), rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert review", err)
	}
	return id, nil
}
