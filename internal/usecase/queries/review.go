package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByTutoryID(ctx context.Context, tutoryID uuid.UUID) ([]*ReviewView, error)
}

type SubjectReadStore interface {
	FindAll(ctx context.Context) ([]*SubjectView, error)
}

type ReviewQueries interface {
	ListByTutory(ctx context.Context, tutoryID uuid.UUID) ([]*ReviewView, error)
}

type SubjectQueries interface {
	List(ctx context.Context) ([]*SubjectView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByTutory(ctx context.Context, tutoryID uuid.UUID) ([]*ReviewView, error) {
	return q.store.FindByTutoryID(ctx, tutoryID)
}

type subjectQueriesImpl struct {
	store SubjectReadStore
}

func NewSubjectQueries(store SubjectReadStore) SubjectQueries {
	return &subjectQueriesImpl{store: store}
}

func (q *subjectQueriesImpl) List(ctx context.Context) ([]*SubjectView, error) {
	return q.store.FindAll(ctx)
}
