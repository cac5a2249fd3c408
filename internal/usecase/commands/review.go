package commands

import (
	"context"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/domain/review"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotCompleted = errs.New("order is not completed")
	ErrReviewExists      = errs.New("order already has a review")
	ErrNotOrderLearner   = errs.New("caller is not the learner on the order")
)

type CreateReviewInput struct {
	OrderID uuid.UUID
	Rating  int
	Message string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, learnerID uuid.UUID, input CreateReviewInput) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

// CreateReview is gated on the order being completed, owned by the caller,
// and not yet reviewed. One review per order.
func (c *reviewCommandsImpl) CreateReview(ctx context.Context, learnerID uuid.UUID, input CreateReviewInput) (uuid.UUID, error) {
	rating, err := review.NewRating(input.Rating)
	if err != nil {
		return uuid.Nil, err
	}
	message, err := review.NewMessage(input.Message)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().OrderByID(ctx, input.OrderID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return txErr
		}
		if snap.LearnerID != learnerID {
			return ErrNotOrderLearner
		}
		if snap.Status != order.StatusCompleted {
			return ErrOrderNotCompleted
		}

		exists, txErr := tx.Reads().ReviewExistsForOrder(ctx, input.OrderID)
		if txErr != nil {
			return txErr
		}
		if exists {
			return ErrReviewExists
		}

		entity := review.NewReview(snap.ID, learnerID, snap.TutoryID, rating, message, c.clock.Now())
		created, txErr := tx.Reviews().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrReviewExists
			}
			return txErr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
