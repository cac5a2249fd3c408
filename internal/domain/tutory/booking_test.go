//go:build unit

package tutory_test

import (
	"testing"
	"time"

	"tutorlink/internal/domain/tutory"
	"tutorlink/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitSession(t *testing.T) {
	template, err := builder.NewTutoryBuilder().BuildTemplate()
	require.NoError(t, err)

	now := monday.Add(8 * time.Hour)
	slot := monday.Add(9 * time.Hour)

	cases := []struct {
		name     string
		proposed time.Time
		busy     []tutory.BusyInterval
		errIs    error
	}{
		{
			name:     "exact template instant",
			proposed: slot,
		},
		{
			name:     "thirty minutes off a template instant",
			proposed: slot.Add(30 * time.Minute),
			errIs:    tutory.ErrTutorNotAvailable,
		},
		{
			name:     "instant in the past",
			proposed: monday.AddDate(0, 0, -7).Add(9 * time.Hour),
			errIs:    tutory.ErrSessionNotInFuture,
		},
		{
			name:     "instant equal to now is not strictly future",
			proposed: now,
			errIs:    tutory.ErrSessionNotInFuture,
		},
		{
			name:     "instant beyond the window",
			proposed: monday.AddDate(0, 0, 14).Add(9 * time.Hour),
			errIs:    tutory.ErrTutorNotAvailable,
		},
		{
			name:     "instant covered by a scheduled interval",
			proposed: slot,
			busy: []tutory.BusyInterval{
				{Start: slot, End: slot.Add(2 * time.Hour)},
			},
			errIs: tutory.ErrTutorNotAvailable,
		},
		{
			name:     "instant at the end of a scheduled interval is free",
			proposed: monday.Add(14 * time.Hour),
			busy: []tutory.BusyInterval{
				{Start: monday.Add(12 * time.Hour), End: monday.Add(14 * time.Hour)},
			},
		},
		{
			name:     "interval on a different day does not block",
			proposed: slot,
			busy: []tutory.BusyInterval{
				{Start: monday.AddDate(0, 0, 2).Add(10 * time.Hour), End: monday.AddDate(0, 0, 2).Add(11 * time.Hour)},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := template.AdmitSession(tc.proposed, now, 14, tc.busy)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBusyIntervalCovers(t *testing.T) {
	start := monday.Add(9 * time.Hour)
	interval := tutory.BusyInterval{Start: start, End: start.Add(2 * time.Hour)}

	assert.True(t, interval.Covers(start))
	assert.True(t, interval.Covers(start.Add(time.Hour)))
	assert.False(t, interval.Covers(start.Add(2*time.Hour)))
	assert.False(t, interval.Covers(start.Add(-time.Minute)))
}

func TestAvailableInstants(t *testing.T) {
	template, err := builder.NewTutoryBuilder().BuildTemplate()
	require.NoError(t, err)

	now := monday.Add(8 * time.Hour)

	t.Run("without busy intervals matches expansion", func(t *testing.T) {
		got := template.AvailableInstants(now, 7, nil)
		assert.Empty(t, cmp.Diff(template.Expand(now, 7), got))
	})

	t.Run("subtracts covered instants", func(t *testing.T) {
		busy := []tutory.BusyInterval{
			{Start: monday.Add(9 * time.Hour), End: monday.Add(11 * time.Hour)},
		}
		got := template.AvailableInstants(now, 7, busy)

		want := []time.Time{
			monday.Add(14 * time.Hour),
			monday.AddDate(0, 0, 2).Add(10 * time.Hour),
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("fully booked window yields empty slice", func(t *testing.T) {
		busy := []tutory.BusyInterval{
			{Start: monday, End: monday.AddDate(0, 0, 7)},
		}
		got := template.AvailableInstants(now, 7, busy)
		assert.Empty(t, got)
	})
}
