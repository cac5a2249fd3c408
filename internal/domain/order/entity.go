package order

import (
	"strings"
	"time"

	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTotalHours = errs.New("total hours must be between 1 and 5")
	ErrInvalidStatus     = errs.New("invalid order status")
	ErrIllegalTransition = errs.New("illegal order status transition")
	ErrNegativePrice     = errs.New("order price cannot be negative")
)

const (
	MinTotalHours = 1
	MaxTotalHours = 5
)

// Order is a learner's request to book a session against a tutory at a
// specific instant. The tutor reference is denormalized through the tutory.
type Order struct {
	id               uuid.UUID
	learnerID        uuid.UUID
	tutoryID         uuid.UUID
	sessionTime      time.Time
	totalHours       int
	estimatedEndTime time.Time
	price            int
	status           Status
	note             string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewOrder builds a pending order. estimatedEndTime and price are derived,
// never caller-supplied: start + totalHours and hourlyRate * totalHours.
func NewOrder(
	learnerID, tutoryID uuid.UUID,
	sessionTime time.Time,
	totalHours int,
	hourlyRate int,
	note string,
) (*Order, error) {
	if totalHours < MinTotalHours || totalHours > MaxTotalHours {
		return nil, ErrInvalidTotalHours
	}

	price := hourlyRate * totalHours
	if price < 0 {
		return nil, ErrNegativePrice
	}

	sessionTime = sessionTime.UTC()

	return &Order{
		id:               uuid.New(),
		learnerID:        learnerID,
		tutoryID:         tutoryID,
		sessionTime:      sessionTime,
		totalHours:       totalHours,
		estimatedEndTime: sessionTime.Add(time.Duration(totalHours) * time.Hour),
		price:            price,
		status:           StatusPending,
		note:             strings.TrimSpace(note),
	}, nil
}

func ReconstructOrder(
	id, learnerID, tutoryID uuid.UUID,
	sessionTime time.Time,
	totalHours int,
	estimatedEndTime time.Time,
	price int,
	status Status,
	note string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		learnerID:        learnerID,
		tutoryID:         tutoryID,
		sessionTime:      sessionTime,
		totalHours:       totalHours,
		estimatedEndTime: estimatedEndTime,
		price:            price,
		status:           status,
		note:             note,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// TransitionTo enforces the state machine. Re-applying the current status is
// a no-op rather than an error so repeated declines stay idempotent.
func (o *Order) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if o.status == next {
		return nil
	}
	if !o.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrIllegalTransition, "%s -> %s", o.status, next)
	}
	o.status = next
	return nil
}

// StartsWithin reports whether this order's session start falls inside the
// half-open interval [start, end). The accept cascade compares only the
// candidate's start against the accepted interval, so an order starting
// earlier but overlapping into it is not caught. Kept as observed behavior
// pending product clarification.
func (o *Order) StartsWithin(start, end time.Time) bool {
	return !o.sessionTime.Before(start) && o.sessionTime.Before(end)
}

func (o *Order) IsPending() bool   { return o.status == StatusPending }
func (o *Order) IsScheduled() bool { return o.status == StatusScheduled }

func (o *Order) ID() uuid.UUID              { return o.id }
func (o *Order) LearnerID() uuid.UUID       { return o.learnerID }
func (o *Order) TutoryID() uuid.UUID        { return o.tutoryID }
func (o *Order) SessionTime() time.Time     { return o.sessionTime }
func (o *Order) TotalHours() int            { return o.totalHours }
func (o *Order) EstimatedEndTime() time.Time { return o.estimatedEndTime }
func (o *Order) Price() int                 { return o.price }
func (o *Order) Status() Status             { return o.status }
func (o *Order) Note() string               { return o.note }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) UpdatedAt() time.Time       { return o.updatedAt }
