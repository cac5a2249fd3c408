package queries

import (
	"context"
	"time"

	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTutoryNotFound       = errs.New("tutory not found")
	ErrInvalidWindowRequest = errs.New("availability window must be 7 or 14 days")
)

type TutorySearchFilters struct {
	SubjectID  *uuid.UUID
	Category   *string
	LessonType *string
	Query      *string
}

type TutoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TutoryView, error)
	Search(ctx context.Context, filters TutorySearchFilters) ([]*TutoryListItem, error)
	ScheduledIntervalsByTutor(ctx context.Context, tutorID uuid.UUID) ([]tutory.BusyInterval, error)
}

type TutoryQueries interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*TutoryView, error)
	Search(ctx context.Context, filters TutorySearchFilters) ([]*TutoryListItem, error)
	// Availability expands the weekly template over the window and subtracts
	// instants already covered by the tutor's scheduled sessions across all
	// of that tutor's tutories.
	Availability(ctx context.Context, id uuid.UUID, windowDays int) ([]time.Time, error)
}

type tutoryQueriesImpl struct {
	store TutoryReadStore
	clock clock.Clock
}

func NewTutoryQueries(store TutoryReadStore, clk clock.Clock) TutoryQueries {
	return &tutoryQueriesImpl{store: store, clock: clk}
}

func (q *tutoryQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*TutoryView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *tutoryQueriesImpl) Search(ctx context.Context, filters TutorySearchFilters) ([]*TutoryListItem, error) {
	return q.store.Search(ctx, filters)
}

func (q *tutoryQueriesImpl) Availability(ctx context.Context, id uuid.UUID, windowDays int) ([]time.Time, error) {
	if windowDays != 7 && windowDays != 14 {
		return nil, ErrInvalidWindowRequest
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	busy, err := q.store.ScheduledIntervalsByTutor(ctx, view.TutorID)
	if err != nil {
		return nil, err
	}

	template := tutory.ReconstructWeeklyTemplate(view.Availability)
	return template.AvailableInstants(q.clock.Now(), windowDays, busy), nil
}
