//go:build unit

package tutory_test

import (
	"testing"

	"tutorlink/internal/domain/tutory"
	"tutorlink/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTutory(t *testing.T) {
	t.Run("new tutory is enabled", func(t *testing.T) {
		b := builder.NewTutoryBuilder()
		entity, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, entity.IsEnabled())
		assert.True(t, entity.IsOwnedBy(b.TutorID))
		assert.False(t, entity.IsOwnedBy(uuid.New()))
		assert.Equal(t, "Algebra Basics", entity.Name())
	})

	t.Run("price is rate times hours", func(t *testing.T) {
		entity, err := builder.NewTutoryBuilder().WithHourlyRate(75).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 225, entity.PriceFor(3))
	})

	cases := []struct {
		name   string
		mutate func(*builder.TutoryBuilder)
		errIs  error
	}{
		{
			name:   "blank name",
			mutate: func(b *builder.TutoryBuilder) { b.Name = "   " },
			errIs:  tutory.ErrEmptyName,
		},
		{
			name:   "zero hourly rate",
			mutate: func(b *builder.TutoryBuilder) { b.HourlyRate = 0 },
			errIs:  tutory.ErrInvalidHourlyRate,
		},
		{
			name:   "negative hourly rate",
			mutate: func(b *builder.TutoryBuilder) { b.HourlyRate = -10 },
			errIs:  tutory.ErrInvalidHourlyRate,
		},
		{
			name:   "unknown lesson type",
			mutate: func(b *builder.TutoryBuilder) { b.LessonType = "hybrid" },
			errIs:  tutory.ErrInvalidLessonType,
		},
		{
			name:   "empty availability",
			mutate: func(b *builder.TutoryBuilder) { b.Availability = map[int][]string{} },
			errIs:  tutory.ErrEmptyTemplate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewTutoryBuilder().With(tc.mutate).BuildDomain()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestLessonType(t *testing.T) {
	for _, valid := range []string{"online", "offline", "both"} {
		lt, err := tutory.NewLessonType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, lt.String())
	}

	_, err := tutory.NewLessonType("in-person")
	assert.ErrorIs(t, err, tutory.ErrInvalidLessonType)
}
