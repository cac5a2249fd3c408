//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/shared"
	"tutorlink/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday; the default builder template has Monday slots at
// 09:00 and 14:00 and a Wednesday slot at 10:00.
var (
	monday  = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	testNow = monday.Add(8 * time.Hour)
)

func newOrderCommands(uow *fakeUoW, notifier *fakeNotifier) commands.OrderCommands {
	return commands.NewOrderCommands(uow, notifier, clock.NewMockClock(testNow), config.NewTestConfig())
}

func seedTutory(uow *fakeUoW, tutorID uuid.UUID, enabled bool) *shared.TutorySnapshot {
	snap := &shared.TutorySnapshot{
		ID:           uuid.New(),
		TutorID:      tutorID,
		SubjectID:    uuid.New(),
		Name:         "Algebra Basics",
		HourlyRate:   50,
		LessonType:   "online",
		Availability: map[int][]string{1: {"09:00", "14:00"}, 3: {"10:00"}},
		IsEnabled:    enabled,
	}
	uow.tx.reads.tutories[snap.ID] = snap
	return snap
}

func TestCreateOrder(t *testing.T) {
	learnerID := uuid.New()
	tutorID := uuid.New()

	t.Run("creates a pending order with derived price", func(t *testing.T) {
		uow := newFakeUoW()
		notifier := &fakeNotifier{}
		snap := seedTutory(uow, tutorID, true)
		cmd := newOrderCommands(uow, notifier)

		result, err := cmd.CreateOrder(context.Background(), learnerID, commands.CreateOrderInput{
			TutoryID:    snap.ID,
			SessionTime: monday.Add(9 * time.Hour),
			TotalHours:  2,
			Note:        "first session",
		})
		require.NoError(t, err)
		assert.Equal(t, 100, result.Price)

		require.Len(t, uow.tx.orders.created, 1)
		created := uow.tx.orders.created[0]
		assert.Equal(t, result.OrderID, created.ID())
		assert.Equal(t, order.StatusPending, created.Status())
		assert.True(t, created.EstimatedEndTime().Equal(monday.Add(11*time.Hour)))

		require.Len(t, notifier.events, 1)
		assert.Equal(t, snap.TutorID, notifier.events[0].UserID)
		assert.Equal(t, commands.NotificationOrderCreated, notifier.events[0].Type)
	})

	t.Run("notifier failure does not fail the booking", func(t *testing.T) {
		uow := newFakeUoW()
		notifier := &fakeNotifier{failErr: assert.AnError}
		snap := seedTutory(uow, tutorID, true)
		cmd := newOrderCommands(uow, notifier)

		_, err := cmd.CreateOrder(context.Background(), learnerID, commands.CreateOrderInput{
			TutoryID:    snap.ID,
			SessionTime: monday.Add(9 * time.Hour),
			TotalHours:  1,
		})
		assert.NoError(t, err)
		assert.Len(t, uow.tx.orders.created, 1)
	})

	cases := []struct {
		name    string
		prepare func(uow *fakeUoW) uuid.UUID
		session time.Time
		errIs   error
	}{
		{
			name:    "unknown tutory",
			prepare: func(uow *fakeUoW) uuid.UUID { return uuid.New() },
			session: monday.Add(9 * time.Hour),
			errIs:   commands.ErrTutoryNotFound,
		},
		{
			name: "disabled tutory",
			prepare: func(uow *fakeUoW) uuid.UUID {
				return seedTutory(uow, tutorID, false).ID
			},
			session: monday.Add(9 * time.Hour),
			errIs:   commands.ErrTutoryDisabled,
		},
		{
			name: "session in the past",
			prepare: func(uow *fakeUoW) uuid.UUID {
				return seedTutory(uow, tutorID, true).ID
			},
			session: monday.AddDate(0, 0, -7).Add(9 * time.Hour),
			errIs:   commands.ErrSessionInPast,
		},
		{
			name: "session off the weekly template",
			prepare: func(uow *fakeUoW) uuid.UUID {
				return seedTutory(uow, tutorID, true).ID
			},
			session: monday.Add(9*time.Hour + 30*time.Minute),
			errIs:   commands.ErrTutorNotAvailable,
		},
		{
			name: "session covered by a scheduled interval",
			prepare: func(uow *fakeUoW) uuid.UUID {
				id := seedTutory(uow, tutorID, true).ID
				uow.tx.reads.busy = []tutory.BusyInterval{
					{Start: monday.Add(9 * time.Hour), End: monday.Add(11 * time.Hour)},
				}
				return id
			},
			session: monday.Add(9 * time.Hour),
			errIs:   commands.ErrTutorNotAvailable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uow := newFakeUoW()
			notifier := &fakeNotifier{}
			tutoryID := tc.prepare(uow)
			cmd := newOrderCommands(uow, notifier)

			_, err := cmd.CreateOrder(context.Background(), learnerID, commands.CreateOrderInput{
				TutoryID:    tutoryID,
				SessionTime: tc.session,
				TotalHours:  2,
			})
			assert.ErrorIs(t, err, tc.errIs)
			assert.Empty(t, uow.tx.orders.created)
			assert.Empty(t, notifier.events)
		})
	}
}

func seedOrder(uow *fakeUoW, b *builder.OrderBuilder) *shared.OrderSnapshot {
	snap := b.BuildSnapshot()
	uow.tx.reads.orders[snap.ID] = snap
	if snap.Status == order.StatusPending {
		uow.tx.reads.pending = append(uow.tx.reads.pending, snap)
	}
	return snap
}

func TestAcceptOrder(t *testing.T) {
	tutorID := uuid.New()
	tutoryID := uuid.New()

	base := func() *builder.OrderBuilder {
		return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.TutorID = tutorID
			b.TutoryID = tutoryID
		})
	}

	t.Run("schedules the order and declines overlapping pendings", func(t *testing.T) {
		uow := newFakeUoW()
		notifier := &fakeNotifier{}

		// Accepted: Monday 09:00 for 2h, so the interval is [09:00, 11:00).
		accepted := seedOrder(uow, base())
		inWindow := seedOrder(uow, base().WithSessionTime(monday.Add(10*time.Hour)))
		atEnd := seedOrder(uow, base().WithSessionTime(monday.Add(11*time.Hour)))
		startsBefore := seedOrder(uow, base().
			WithSessionTime(monday.Add(8*time.Hour)).
			WithTotalHours(3))
		otherTutory := seedOrder(uow, builder.NewOrderBuilder().
			WithSessionTime(monday.Add(10*time.Hour)))

		cmd := newOrderCommands(uow, notifier)
		require.NoError(t, cmd.AcceptOrder(context.Background(), tutorID, accepted.ID))

		assert.Equal(t, []statusChange{
			{id: accepted.ID, status: order.StatusScheduled},
			{id: inWindow.ID, status: order.StatusDeclined},
		}, uow.tx.orders.changes)

		require.Len(t, notifier.events, 2)
		assert.Equal(t, commands.NotificationOrderAccepted, notifier.events[0].Type)
		assert.Equal(t, accepted.LearnerID, notifier.events[0].UserID)
		assert.Equal(t, commands.NotificationOrderDeclined, notifier.events[1].Type)
		assert.Equal(t, inWindow.LearnerID, notifier.events[1].UserID)

		// Boundary, earlier-start and other-tutory orders are untouched.
		for _, untouched := range []*shared.OrderSnapshot{atEnd, startsBefore, otherTutory} {
			for _, change := range uow.tx.orders.changes {
				assert.NotEqual(t, untouched.ID, change.id)
			}
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := newOrderCommands(uow, &fakeNotifier{})
		err := cmd.AcceptOrder(context.Background(), tutorID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("caller does not own the tutory", func(t *testing.T) {
		uow := newFakeUoW()
		notifier := &fakeNotifier{}
		snap := seedOrder(uow, base())
		cmd := newOrderCommands(uow, notifier)

		err := cmd.AcceptOrder(context.Background(), uuid.New(), snap.ID)
		assert.ErrorIs(t, err, commands.ErrNotTutoryOwner)
		assert.Empty(t, uow.tx.orders.changes)
		assert.Empty(t, notifier.events)
	})

	t.Run("declined order cannot be accepted", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, base().WithStatus(order.StatusDeclined))
		cmd := newOrderCommands(uow, &fakeNotifier{})

		err := cmd.AcceptOrder(context.Background(), tutorID, snap.ID)
		assert.ErrorIs(t, err, commands.ErrOrderNotActionable)
	})
}

func TestDeclineOrder(t *testing.T) {
	tutorID := uuid.New()

	base := func() *builder.OrderBuilder {
		return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.TutorID = tutorID
		})
	}

	t.Run("declines a pending order and notifies the learner", func(t *testing.T) {
		uow := newFakeUoW()
		notifier := &fakeNotifier{}
		snap := seedOrder(uow, base())
		cmd := newOrderCommands(uow, notifier)

		require.NoError(t, cmd.DeclineOrder(context.Background(), tutorID, snap.ID))

		assert.Equal(t, []statusChange{{id: snap.ID, status: order.StatusDeclined}}, uow.tx.orders.changes)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, commands.NotificationOrderDeclined, notifier.events[0].Type)
		assert.Equal(t, snap.LearnerID, notifier.events[0].UserID)
	})

	t.Run("declining an already declined order is a silent no-op", func(t *testing.T) {
		uow := newFakeUoW()
		notifier := &fakeNotifier{}
		snap := seedOrder(uow, base().WithStatus(order.StatusDeclined))
		cmd := newOrderCommands(uow, notifier)

		require.NoError(t, cmd.DeclineOrder(context.Background(), tutorID, snap.ID))

		assert.Empty(t, uow.tx.orders.changes)
		assert.Empty(t, notifier.events)
	})

	t.Run("scheduled order cannot be declined", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, base().WithStatus(order.StatusScheduled))
		cmd := newOrderCommands(uow, &fakeNotifier{})

		err := cmd.DeclineOrder(context.Background(), tutorID, snap.ID)
		assert.ErrorIs(t, err, commands.ErrOrderNotActionable)
	})

	t.Run("caller does not own the tutory", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, base())
		cmd := newOrderCommands(uow, &fakeNotifier{})

		err := cmd.DeclineOrder(context.Background(), uuid.New(), snap.ID)
		assert.ErrorIs(t, err, commands.ErrNotTutoryOwner)
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("either party may cancel and nobody is notified", func(t *testing.T) {
		for _, party := range []string{"learner", "tutor"} {
			uow := newFakeUoW()
			notifier := &fakeNotifier{}
			snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusScheduled))
			cmd := newOrderCommands(uow, notifier)

			actorID := snap.LearnerID
			if party == "tutor" {
				actorID = snap.TutorID
			}
			require.NoError(t, cmd.CancelOrder(context.Background(), actorID, snap.ID))

			assert.Equal(t, []statusChange{{id: snap.ID, status: order.StatusCanceled}}, uow.tx.orders.changes)
			assert.Empty(t, notifier.events)
		}
	})

	t.Run("pending order can be canceled", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, builder.NewOrderBuilder())
		cmd := newOrderCommands(uow, &fakeNotifier{})

		assert.NoError(t, cmd.CancelOrder(context.Background(), snap.LearnerID, snap.ID))
	})

	t.Run("third party cannot cancel", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, builder.NewOrderBuilder())
		cmd := newOrderCommands(uow, &fakeNotifier{})

		err := cmd.CancelOrder(context.Background(), uuid.New(), snap.ID)
		assert.ErrorIs(t, err, commands.ErrNotOrderParticipant)
	})

	t.Run("completed order cannot be canceled", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedOrder(uow, builder.NewOrderBuilder().WithStatus(order.StatusCompleted))
		cmd := newOrderCommands(uow, &fakeNotifier{})

		err := cmd.CancelOrder(context.Background(), snap.LearnerID, snap.ID)
		assert.ErrorIs(t, err, commands.ErrOrderNotActionable)
	})

	t.Run("unknown order", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := newOrderCommands(uow, &fakeNotifier{})
		err := cmd.CancelOrder(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}
