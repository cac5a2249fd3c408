package queries

import (
	"context"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errs.New("order not found")
	ErrOrderNotAccessible = errs.New("order does not belong to the caller")
	ErrUnknownStatusQuery = errs.New("unknown status filter")
)

// StatusFilter is the query-side status vocabulary. It is deliberately not
// order.Status: the public "completed" filter matches completed OR declined
// orders. The conflation mirrors observed behavior and is kept behind this
// named composite rather than a literal status comparison.
type StatusFilter string

const (
	FilterPending   StatusFilter = "pending"
	FilterScheduled StatusFilter = "scheduled"
	FilterResolved  StatusFilter = "completed"
)

// MatchStatuses returns the concrete statuses a filter selects.
func (f StatusFilter) MatchStatuses() []order.Status {
	switch f {
	case FilterPending:
		return []order.Status{order.StatusPending}
	case FilterScheduled:
		return []order.Status{order.StatusScheduled}
	case FilterResolved:
		return []order.Status{order.StatusCompleted, order.StatusDeclined}
	default:
		return nil
	}
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(s)
	switch f {
	case FilterPending, FilterScheduled, FilterResolved:
		return f, nil
	default:
		return "", ErrUnknownStatusQuery
	}
}

// OrderFilters combine conjunctively. TutorID resolves indirectly through
// tutory ownership.
type OrderFilters struct {
	LearnerID *uuid.UUID
	TutorID   *uuid.UUID
	TutoryID  *uuid.UUID
	Statuses  []order.Status
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByFilters(ctx context.Context, filters OrderFilters) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*OrderView, error)
	ListMine(ctx context.Context, actorID uuid.UUID, actorRole string, filter *StatusFilter) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.LearnerID != actorID && view.TutorID != actorID {
		return nil, ErrOrderNotAccessible
	}
	return view, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, actorID uuid.UUID, actorRole string, filter *StatusFilter) ([]*OrderView, error) {
	filters := OrderFilters{}
	if actorRole == RoleTutor {
		filters.TutorID = &actorID
	} else {
		filters.LearnerID = &actorID
	}
	if filter != nil {
		filters.Statuses = filter.MatchStatuses()
	}

	return q.store.FindByFilters(ctx, filters)
}
