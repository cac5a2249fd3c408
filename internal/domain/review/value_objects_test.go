//go:build unit

package review_test

import (
	"strings"
	"testing"

	"tutorlink/internal/domain/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum rating", value: 1},
		{name: "maximum rating", value: 5},
		{name: "zero", value: 0, errIs: review.ErrInvalidRating},
		{name: "above range", value: 6, errIs: review.ErrInvalidRating},
		{name: "negative", value: -1, errIs: review.ErrInvalidRating},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rating, err := review.NewRating(tc.value)
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.value, rating.Value())
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewMessage(t *testing.T) {
	t.Run("empty message is valid", func(t *testing.T) {
		msg, err := review.NewMessage("")
		require.NoError(t, err)
		assert.True(t, msg.IsEmpty())
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		msg, err := review.NewMessage("  great session  ")
		require.NoError(t, err)
		assert.Equal(t, "great session", msg.String())
	})

	t.Run("maximum length accepted", func(t *testing.T) {
		msg, err := review.NewMessage(strings.Repeat("a", review.MaxMessageLength))
		require.NoError(t, err)
		assert.Len(t, msg.String(), review.MaxMessageLength)
	})

	t.Run("over maximum length rejected", func(t *testing.T) {
		_, err := review.NewMessage(strings.Repeat("a", review.MaxMessageLength+1))
		assert.ErrorIs(t, err, review.ErrMessageTooLong)
	})

	t.Run("length checked after trimming", func(t *testing.T) {
		padded := "  " + strings.Repeat("a", review.MaxMessageLength) + "  "
		msg, err := review.NewMessage(padded)
		require.NoError(t, err)
		assert.Len(t, msg.String(), review.MaxMessageLength)
	})
}
