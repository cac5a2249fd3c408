//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderReadStore struct {
	views       map[uuid.UUID]*queries.OrderView
	lastFilters queries.OrderFilters
	listResult  []*queries.OrderView
}

func (f *fakeOrderReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, queries.ErrOrderNotFound
	}
	return view, nil
}

func (f *fakeOrderReadStore) FindByFilters(_ context.Context, filters queries.OrderFilters) ([]*queries.OrderView, error) {
	f.lastFilters = filters
	return f.listResult, nil
}

func TestParseStatusFilter(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  queries.StatusFilter
		errIs error
	}{
		{name: "pending", input: "pending", want: queries.FilterPending},
		{name: "scheduled", input: "scheduled", want: queries.FilterScheduled},
		{name: "completed", input: "completed", want: queries.FilterResolved},
		{name: "declined is not a public filter", input: "declined", errIs: queries.ErrUnknownStatusQuery},
		{name: "canceled is not a public filter", input: "canceled", errIs: queries.ErrUnknownStatusQuery},
		{name: "empty string", input: "", errIs: queries.ErrUnknownStatusQuery},
		{name: "garbage", input: "resolved", errIs: queries.ErrUnknownStatusQuery},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := queries.ParseStatusFilter(tc.input)
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestStatusFilterMatchStatuses(t *testing.T) {
	assert.Equal(t, []order.Status{order.StatusPending}, queries.FilterPending.MatchStatuses())
	assert.Equal(t, []order.Status{order.StatusScheduled}, queries.FilterScheduled.MatchStatuses())
	// The public "completed" filter also matches declined orders.
	assert.Equal(t,
		[]order.Status{order.StatusCompleted, order.StatusDeclined},
		queries.FilterResolved.MatchStatuses(),
	)
	assert.Nil(t, queries.StatusFilter("bogus").MatchStatuses())
}

func TestOrderQueriesGetByID(t *testing.T) {
	learnerID := uuid.New()
	tutorID := uuid.New()
	orderID := uuid.New()

	store := &fakeOrderReadStore{
		views: map[uuid.UUID]*queries.OrderView{
			orderID: {ID: orderID, LearnerID: learnerID, TutorID: tutorID},
		},
	}
	q := queries.NewOrderQueries(store)

	t.Run("learner can read their order", func(t *testing.T) {
		view, err := q.GetByID(context.Background(), learnerID, orderID)
		require.NoError(t, err)
		assert.Equal(t, orderID, view.ID)
	})

	t.Run("tutor can read the order", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), tutorID, orderID)
		assert.NoError(t, err)
	})

	t.Run("third party is rejected", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), orderID)
		assert.ErrorIs(t, err, queries.ErrOrderNotAccessible)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), learnerID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestOrderQueriesListMine(t *testing.T) {
	actorID := uuid.New()
	store := &fakeOrderReadStore{}
	q := queries.NewOrderQueries(store)

	t.Run("learner role filters by learner id", func(t *testing.T) {
		_, err := q.ListMine(context.Background(), actorID, queries.RoleLearner, nil)
		require.NoError(t, err)
		require.NotNil(t, store.lastFilters.LearnerID)
		assert.Equal(t, actorID, *store.lastFilters.LearnerID)
		assert.Nil(t, store.lastFilters.TutorID)
		assert.Nil(t, store.lastFilters.Statuses)
	})

	t.Run("tutor role filters by tutor id", func(t *testing.T) {
		_, err := q.ListMine(context.Background(), actorID, queries.RoleTutor, nil)
		require.NoError(t, err)
		require.NotNil(t, store.lastFilters.TutorID)
		assert.Equal(t, actorID, *store.lastFilters.TutorID)
		assert.Nil(t, store.lastFilters.LearnerID)
	})

	t.Run("status filter expands to concrete statuses", func(t *testing.T) {
		filter := queries.FilterResolved
		_, err := q.ListMine(context.Background(), actorID, queries.RoleLearner, &filter)
		require.NoError(t, err)
		assert.Equal(t,
			[]order.Status{order.StatusCompleted, order.StatusDeclined},
			store.lastFilters.Statuses,
		)
	})
}
