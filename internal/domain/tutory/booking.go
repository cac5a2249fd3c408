package tutory

import (
	"time"

	"tutorlink/internal/pkg/errs"
)

var (
	ErrSessionNotInFuture = errs.New("session time must be in the future")
	ErrTutorNotAvailable  = errs.New("tutor is not available at this time")
)

// BusyInterval is a half-open [Start, End) span already committed on the
// tutor's calendar, across all of the tutor's tutories.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

func (b BusyInterval) Covers(instant time.Time) bool {
	return !instant.Before(b.Start) && instant.Before(b.End)
}

// AdmitSession decides whether a proposed session start is bookable: the
// instant must be strictly in the future, must be one of the template's
// expanded instants within the window, and must not fall inside any of the
// tutor's already scheduled intervals. Pure decision, no side effects.
func (t WeeklyTemplate) AdmitSession(proposed, now time.Time, windowDays int, busy []BusyInterval) error {
	proposed = proposed.UTC()
	if !proposed.After(now.UTC()) {
		return ErrSessionNotInFuture
	}

	for _, candidate := range t.Expand(now, windowDays) {
		if !candidate.Equal(proposed) {
			continue
		}
		for _, interval := range busy {
			if interval.Covers(candidate) {
				return ErrTutorNotAvailable
			}
		}
		return nil
	}

	return ErrTutorNotAvailable
}

// AvailableInstants is Expand minus instants covered by busy intervals; it
// backs the public availability endpoint so learners only see slots that can
// actually be admitted.
func (t WeeklyTemplate) AvailableInstants(now time.Time, windowDays int, busy []BusyInterval) []time.Time {
	expanded := t.Expand(now, windowDays)
	available := make([]time.Time, 0, len(expanded))

	for _, instant := range expanded {
		covered := false
		for _, interval := range busy {
			if interval.Covers(instant) {
				covered = true
				break
			}
		}
		if !covered {
			available = append(available, instant)
		}
	}
	return available
}
