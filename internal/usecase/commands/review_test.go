//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/domain/review"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/usecase/commands"
	"tutorlink/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	newReviewCommands := func(uow *fakeUoW) commands.ReviewCommands {
		return commands.NewReviewCommands(uow, clock.NewMockClock(testNow))
	}

	t.Run("creates a review for a completed order", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
		cmd := newReviewCommands(uow)

		id, err := cmd.CreateReview(context.Background(), snap.LearnerID, commands.CreateReviewInput{
			OrderID: snap.ID,
			Rating:  5,
			Message: "  very helpful  ",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, uow.tx.reviews.created, 1)
		created := uow.tx.reviews.created[0]
		assert.Equal(t, snap.ID, created.OrderID())
		assert.Equal(t, snap.TutoryID, created.TutoryID())
		assert.Equal(t, 5, created.Rating().Value())
		assert.Equal(t, "very helpful", created.Message().String())
	})

	t.Run("empty message is allowed", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
		cmd := newReviewCommands(uow)

		_, err := cmd.CreateReview(context.Background(), snap.LearnerID, commands.CreateReviewInput{
			OrderID: snap.ID,
			Rating:  3,
		})
		assert.NoError(t, err)
	})

	cases := []struct {
		name    string
		prepare func(uow *fakeUoW) (learnerID, orderID uuid.UUID)
		rating  int
		message string
		errIs   error
	}{
		{
			name: "unknown order",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				return uuid.New(), uuid.New()
			},
			rating: 4,
			errIs:  commands.ErrOrderNotFound,
		},
		{
			name: "caller is not the learner",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
				return uuid.New(), snap.ID
			},
			rating: 4,
			errIs:  commands.ErrNotOrderLearner,
		},
		{
			name: "scheduled order cannot be reviewed",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusScheduled))
				return snap.LearnerID, snap.ID
			},
			rating: 4,
			errIs:  commands.ErrOrderNotCompleted,
		},
		{
			name: "declined order cannot be reviewed",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusDeclined))
				return snap.LearnerID, snap.ID
			},
			rating: 4,
			errIs:  commands.ErrOrderNotCompleted,
		},
		{
			name: "order already reviewed",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
				uow.tx.reads.reviewExists = true
				return snap.LearnerID, snap.ID
			},
			rating: 4,
			errIs:  commands.ErrReviewExists,
		},
		{
			name: "rating out of range",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
				return snap.LearnerID, snap.ID
			},
			rating: 6,
			errIs:  review.ErrInvalidRating,
		},
		{
			name: "message too long",
			prepare: func(uow *fakeUoW) (uuid.UUID, uuid.UUID) {
				snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
				return snap.LearnerID, snap.ID
			},
			rating:  4,
			message: strings.Repeat("a", review.MaxMessageLength+1),
			errIs:   review.ErrMessageTooLong,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uow := newFakeUoW()
			learnerID, orderID := tc.prepare(uow)
			cmd := newReviewCommands(uow)

			_, err := cmd.CreateReview(context.Background(), learnerID, commands.CreateReviewInput{
				OrderID: orderID,
				Rating:  tc.rating,
				Message: tc.message,
			})
			assert.ErrorIs(t, err, tc.errIs)
			assert.Empty(t, uow.tx.reviews.created)
		})
	}
}
