//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fakeTutoryReadStore struct {
	views map[uuid.UUID]*queries.TutoryView
	busy  []tutory.BusyInterval
}

func (f *fakeTutoryReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.TutoryView, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, queries.ErrTutoryNotFound
	}
	return view, nil
}

func (f *fakeTutoryReadStore) Search(_ context.Context, _ queries.TutorySearchFilters) ([]*queries.TutoryListItem, error) {
	return nil, nil
}

func (f *fakeTutoryReadStore) ScheduledIntervalsByTutor(_ context.Context, _ uuid.UUID) ([]tutory.BusyInterval, error) {
	return f.busy, nil
}

func TestTutoryQueriesAvailability(t *testing.T) {
	tutoryID := uuid.New()
	store := &fakeTutoryReadStore{
		views: map[uuid.UUID]*queries.TutoryView{
			tutoryID: {
				ID:           tutoryID,
				TutorID:      uuid.New(),
				Availability: map[int][]string{1: {"09:00", "14:00"}, 3: {"10:00"}},
			},
		},
	}
	q := queries.NewTutoryQueries(store, clock.NewMockClock(monday.Add(8*time.Hour)))

	t.Run("expands the weekly template over the window", func(t *testing.T) {
		store.busy = nil
		instants, err := q.Availability(context.Background(), tutoryID, 7)
		require.NoError(t, err)
		require.Len(t, instants, 3)
		assert.True(t, instants[0].Equal(monday.Add(9*time.Hour)))
	})

	t.Run("subtracts scheduled sessions", func(t *testing.T) {
		store.busy = []tutory.BusyInterval{
			{Start: monday.Add(9 * time.Hour), End: monday.Add(11 * time.Hour)},
		}
		instants, err := q.Availability(context.Background(), tutoryID, 7)
		require.NoError(t, err)
		require.Len(t, instants, 2)
		assert.True(t, instants[0].Equal(monday.Add(14*time.Hour)))
	})

	t.Run("only 7 and 14 day windows are accepted", func(t *testing.T) {
		for _, days := range []int{0, 1, 10, 30, -7} {
			_, err := q.Availability(context.Background(), tutoryID, days)
			assert.ErrorIs(t, err, queries.ErrInvalidWindowRequest)
		}
	})

	t.Run("unknown tutory", func(t *testing.T) {
		_, err := q.Availability(context.Background(), uuid.New(), 14)
		assert.ErrorIs(t, err, queries.ErrTutoryNotFound)
	})
}
