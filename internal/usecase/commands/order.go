package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTutoryNotFound       = errs.New("tutory does not exist")
	ErrTutoryDisabled       = errs.New("tutory is not accepting orders")
	ErrOrderNotFound        = errs.New("order not found")
	ErrNotTutoryOwner       = errs.New("caller does not own the tutory")
	ErrNotOrderParticipant  = errs.New("caller is not a party to the order")
	ErrTutorNotAvailable    = errs.New("tutor is not available at this time")
	ErrSessionInPast        = errs.New("session time must be in the future")
	ErrOrderNotActionable   = errs.New("order is not in an actionable state")
	ErrOrderOperationFailed = errs.New("order operation failed")
)

type CreateOrderInput struct {
	TutoryID    uuid.UUID
	SessionTime time.Time
	TotalHours  int
	Note        string
}

type CreateOrderResult struct {
	OrderID uuid.UUID
	Price   int
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, learnerID uuid.UUID, input CreateOrderInput) (*CreateOrderResult, error)
	AcceptOrder(ctx context.Context, tutorID, orderID uuid.UUID) error
	DeclineOrder(ctx context.Context, tutorID, orderID uuid.UUID) error
	CancelOrder(ctx context.Context, actorID, orderID uuid.UUID) error
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
	booking  config.BookingConfig
}

func NewOrderCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock, cfg config.Config) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		booking:  cfg.Booking,
	}
}

// CreateOrder admits the requested session against the tutory's expanded
// availability and the tutor's committed schedule, then inserts a pending
// order with derived end time and price. Two-phase validation: the request
// shape was checked at the handler; business rules run here against fetched
// snapshots.
func (c *orderCommandsImpl) CreateOrder(ctx context.Context, learnerID uuid.UUID, input CreateOrderInput) (*CreateOrderResult, error) {
	snap, err := c.uow.CommandReads().TutoryByID(ctx, input.TutoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTutoryNotFound
		}
		return nil, errs.Wrap(err, "failed to load tutory")
	}
	if !snap.IsEnabled {
		return nil, ErrTutoryDisabled
	}

	busy, err := c.uow.CommandReads().ScheduledIntervalsByTutor(ctx, snap.TutorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load tutor schedule")
	}

	template := tutory.ReconstructWeeklyTemplate(snap.Availability)
	now := c.clock.Now()
	if err := template.AdmitSession(input.SessionTime, now, c.booking.WindowDays, busy); err != nil {
		if errors.Is(err, tutory.ErrSessionNotInFuture) {
			return nil, ErrSessionInPast
		}
		return nil, ErrTutorNotAvailable
	}

	newOrder, err := order.NewOrder(learnerID, input.TutoryID, input.SessionTime, input.TotalHours, snap.HourlyRate, input.Note)
	if err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Orders().Create(ctx, tx.DB(), newOrder)
		if txErr != nil {
			return txErr
		}
		orderID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create order"), ErrOrderOperationFailed)
	}

	c.dispatch(ctx, NotificationEvent{
		UserID:  snap.TutorID,
		Type:    NotificationOrderCreated,
		Title:   "New Order",
		Message: fmt.Sprintf("You have a new order for %s", snap.Name),
		Data:    map[string]any{"order_id": orderID.String()},
	})

	return &CreateOrderResult{OrderID: orderID, Price: newOrder.Price()}, nil
}

// AcceptOrder transitions the order to scheduled and declines every other
// pending order on the same tutory whose session start falls inside the
// accepted [start, end) interval. The whole read-modify-write runs in one
// transaction with row locks so two concurrent accepts serialize instead of
// double-scheduling. Overlap is judged on the candidate's start only; a
// pending order starting earlier but spilling into the accepted interval is
// left alone (observed behavior, kept deliberately).
func (c *orderCommandsImpl) AcceptOrder(ctx context.Context, tutorID, orderID uuid.UUID) error {
	var events []NotificationEvent

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().OrderByIDForUpdate(ctx, orderID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return txErr
		}
		if snap.TutorID != tutorID {
			return ErrNotTutoryOwner
		}

		accepted := snapshotToDomain(snap)
		if txErr := accepted.TransitionTo(order.StatusScheduled); txErr != nil {
			return errs.Mark(txErr, ErrOrderNotActionable)
		}
		if txErr := tx.Orders().UpdateStatus(ctx, tx.DB(), snap.ID, order.StatusScheduled); txErr != nil {
			return txErr
		}

		events = append(events, NotificationEvent{
			UserID:  snap.LearnerID,
			Type:    NotificationOrderAccepted,
			Title:   "Order Accepted",
			Message: "Your order has been accepted",
			Data:    map[string]any{"order_id": snap.ID.String()},
		})

		pending, txErr := tx.Reads().PendingOrdersByTutoryForUpdate(ctx, snap.TutoryID)
		if txErr != nil {
			return txErr
		}

		for _, candidate := range pending {
			if candidate.ID == snap.ID {
				continue
			}

			cand := snapshotToDomain(candidate)
			if !cand.StartsWithin(accepted.SessionTime(), accepted.EstimatedEndTime()) {
				continue
			}

			if txErr := cand.TransitionTo(order.StatusDeclined); txErr != nil {
				return txErr
			}
			if txErr := tx.Orders().UpdateStatus(ctx, tx.DB(), candidate.ID, order.StatusDeclined); txErr != nil {
				return txErr
			}

			events = append(events, NotificationEvent{
				UserID:  candidate.LearnerID,
				Type:    NotificationOrderDeclined,
				Title:   "Order Declined",
				Message: "Your requested time is no longer available",
				Data:    map[string]any{"order_id": candidate.ID.String()},
			})
		}

		return nil
	})
	if err != nil {
		if isKnownOrderErr(err) {
			return err
		}
		return errs.Mark(errs.Wrap(err, "failed to accept order"), ErrOrderOperationFailed)
	}

	for _, ev := range events {
		c.dispatch(ctx, ev)
	}
	return nil
}

// DeclineOrder rejects a pending order. Declining an already-declined order
// is a state no-op and must not error.
func (c *orderCommandsImpl) DeclineOrder(ctx context.Context, tutorID, orderID uuid.UUID) error {
	var learnerID uuid.UUID
	alreadyDeclined := false

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().OrderByIDForUpdate(ctx, orderID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return txErr
		}
		if snap.TutorID != tutorID {
			return ErrNotTutoryOwner
		}

		if snap.Status == order.StatusDeclined {
			alreadyDeclined = true
			return nil
		}

		o := snapshotToDomain(snap)
		if txErr := o.TransitionTo(order.StatusDeclined); txErr != nil {
			return errs.Mark(txErr, ErrOrderNotActionable)
		}

		learnerID = snap.LearnerID
		return tx.Orders().UpdateStatus(ctx, tx.DB(), snap.ID, order.StatusDeclined)
	})
	if err != nil {
		if isKnownOrderErr(err) {
			return err
		}
		return errs.Mark(errs.Wrap(err, "failed to decline order"), ErrOrderOperationFailed)
	}

	if !alreadyDeclined {
		c.dispatch(ctx, NotificationEvent{
			UserID:  learnerID,
			Type:    NotificationOrderDeclined,
			Title:   "Order Declined",
			Message: "Your order has been declined",
			Data:    map[string]any{"order_id": orderID.String()},
		})
	}
	return nil
}

// CancelOrder withdraws an order; either party may cancel. No notification
// is sent on cancel.
func (c *orderCommandsImpl) CancelOrder(ctx context.Context, actorID, orderID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().OrderByIDForUpdate(ctx, orderID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return txErr
		}
		if snap.LearnerID != actorID && snap.TutorID != actorID {
			return ErrNotOrderParticipant
		}

		o := snapshotToDomain(snap)
		if txErr := o.TransitionTo(order.StatusCanceled); txErr != nil {
			return errs.Mark(txErr, ErrOrderNotActionable)
		}

		return tx.Orders().UpdateStatus(ctx, tx.DB(), snap.ID, order.StatusCanceled)
	})
	if err != nil {
		if isKnownOrderErr(err) {
			return err
		}
		return errs.Mark(errs.Wrap(err, "failed to cancel order"), ErrOrderOperationFailed)
	}
	return nil
}

func (c *orderCommandsImpl) dispatch(ctx context.Context, event NotificationEvent) {
	if err := c.notifier.Notify(ctx, event); err != nil {
		slog.Warn("notification dispatch failed",
			"user_id", event.UserID,
			"type", event.Type,
			"error", err.Error())
	}
}

func snapshotToDomain(snap *shared.OrderSnapshot) *order.Order {
	return order.ReconstructOrder(
		snap.ID,
		snap.LearnerID,
		snap.TutoryID,
		snap.SessionTime,
		snap.TotalHours,
		snap.EstimatedEndTime,
		snap.Price,
		snap.Status,
		snap.Note,
		time.Time{},
		time.Time{},
	)
}

func isKnownOrderErr(err error) bool {
	for _, known := range []error{
		ErrOrderNotFound,
		ErrNotTutoryOwner,
		ErrNotOrderParticipant,
		ErrOrderNotActionable,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
