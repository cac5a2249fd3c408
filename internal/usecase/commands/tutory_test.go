//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/pkg/ptr"
	"tutorlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateTutoryInput() commands.CreateTutoryInput {
	return commands.CreateTutoryInput{
		SubjectID:    uuid.New(),
		Name:         "Algebra Basics",
		About:        "Linear equations and factoring",
		Methodology:  "Worked examples first",
		HourlyRate:   50,
		LessonType:   "online",
		Availability: map[int][]string{1: {"09:00", "14:00"}, 3: {"10:00"}},
	}
}

func TestCreateTutory(t *testing.T) {
	tutorID := uuid.New()

	t.Run("creates an enabled tutory", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewTutoryCommands(uow)

		id, err := cmd.CreateTutory(context.Background(), tutorID, validCreateTutoryInput())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, uow.tx.tutories.created, 1)
		created := uow.tx.tutories.created[0]
		assert.Equal(t, tutorID, created.TutorID())
		assert.True(t, created.IsEnabled())
		assert.Equal(t, id, created.ID())
	})

	cases := []struct {
		name   string
		mutate func(*commands.CreateTutoryInput)
		errIs  error
	}{
		{
			name:   "empty name",
			mutate: func(in *commands.CreateTutoryInput) { in.Name = "   " },
			errIs:  tutory.ErrEmptyName,
		},
		{
			name:   "zero hourly rate",
			mutate: func(in *commands.CreateTutoryInput) { in.HourlyRate = 0 },
			errIs:  tutory.ErrInvalidHourlyRate,
		},
		{
			name:   "unknown lesson type",
			mutate: func(in *commands.CreateTutoryInput) { in.LessonType = "hybrid" },
			errIs:  tutory.ErrInvalidLessonType,
		},
		{
			name:   "empty availability",
			mutate: func(in *commands.CreateTutoryInput) { in.Availability = map[int][]string{} },
			errIs:  tutory.ErrEmptyTemplate,
		},
		{
			name:   "malformed availability slot",
			mutate: func(in *commands.CreateTutoryInput) { in.Availability = map[int][]string{1: {"9am"}} },
			errIs:  tutory.ErrInvalidSlotFormat,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uow := newFakeUoW()
			cmd := commands.NewTutoryCommands(uow)

			input := validCreateTutoryInput()
			tc.mutate(&input)

			_, err := cmd.CreateTutory(context.Background(), tutorID, input)
			assert.ErrorIs(t, err, tc.errIs)
			assert.Empty(t, uow.tx.tutories.created)
		})
	}
}

func TestUpdateTutory(t *testing.T) {
	tutorID := uuid.New()

	t.Run("merges partial fields over the stored tutory", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedTutory(uow, tutorID, true)
		cmd := commands.NewTutoryCommands(uow)

		err := cmd.UpdateTutory(context.Background(), tutorID, snap.ID, commands.UpdateTutoryInput{
			HourlyRate: ptr.To(80),
			IsEnabled:  ptr.To(false),
		})
		require.NoError(t, err)

		require.Len(t, uow.tx.tutories.updated, 1)
		updated := uow.tx.tutories.updated[0]
		assert.Equal(t, snap.ID, updated.ID())
		assert.Equal(t, 80, updated.HourlyRate())
		assert.False(t, updated.IsEnabled())
		// Untouched fields survive the merge.
		assert.Equal(t, snap.Name, updated.Name())
		assert.Equal(t, snap.Availability, updated.Availability().Raw())
	})

	t.Run("replaces availability wholesale when provided", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedTutory(uow, tutorID, true)
		cmd := commands.NewTutoryCommands(uow)

		err := cmd.UpdateTutory(context.Background(), tutorID, snap.ID, commands.UpdateTutoryInput{
			Availability: map[int][]string{5: {"16:00"}},
		})
		require.NoError(t, err)

		require.Len(t, uow.tx.tutories.updated, 1)
		assert.Equal(t, map[int][]string{5: {"16:00"}}, uow.tx.tutories.updated[0].Availability().Raw())
	})

	t.Run("unknown tutory", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewTutoryCommands(uow)

		err := cmd.UpdateTutory(context.Background(), tutorID, uuid.New(), commands.UpdateTutoryInput{})
		assert.ErrorIs(t, err, commands.ErrTutoryNotFound)
	})

	t.Run("caller does not own the tutory", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedTutory(uow, tutorID, true)
		cmd := commands.NewTutoryCommands(uow)

		err := cmd.UpdateTutory(context.Background(), uuid.New(), snap.ID, commands.UpdateTutoryInput{})
		assert.ErrorIs(t, err, commands.ErrNotTutoryOwner)
		assert.Empty(t, uow.tx.tutories.updated)
	})

	t.Run("invalid merged state is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		snap := seedTutory(uow, tutorID, true)
		cmd := commands.NewTutoryCommands(uow)

		err := cmd.UpdateTutory(context.Background(), tutorID, snap.ID, commands.UpdateTutoryInput{
			HourlyRate: ptr.To(-10),
		})
		assert.ErrorIs(t, err, tutory.ErrInvalidHourlyRate)
		assert.Empty(t, uow.tx.tutories.updated)
	})
}
