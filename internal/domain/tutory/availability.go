package tutory

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"tutorlink/internal/pkg/errs"
)

var (
	ErrEmptyTemplate     = errs.New("availability template must have at least one slot")
	ErrInvalidDayIndex   = errs.New("availability day index must be between 0 and 6")
	ErrInvalidSlotFormat = errs.New("availability slot must be a zero-padded HH:MM string")
	ErrDuplicateSlot     = errs.New("duplicate availability slot on the same day")
)

var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// WeeklyTemplate is a tutor's recurring availability: day-of-week
// (0=Sunday..6=Saturday) to an ordered list of HH:MM slot starts, all
// interpreted in UTC. Days absent from the map contribute nothing.
type WeeklyTemplate struct {
	slots map[int][]string
}

// NewWeeklyTemplate validates and normalizes a raw template. Slot lists are
// sorted and must be duplicate-free; at least one day must be non-empty.
func NewWeeklyTemplate(raw map[int][]string) (WeeklyTemplate, error) {
	normalized := make(map[int][]string, len(raw))
	total := 0

	for day, times := range raw {
		if day < 0 || day > 6 {
			return WeeklyTemplate{}, errs.Wrapf(ErrInvalidDayIndex, "day %d", day)
		}
		if len(times) == 0 {
			continue
		}

		seen := make(map[string]struct{}, len(times))
		sorted := make([]string, 0, len(times))
		for _, t := range times {
			if !slotPattern.MatchString(t) {
				return WeeklyTemplate{}, errs.Wrapf(ErrInvalidSlotFormat, "slot %q on day %d", t, day)
			}
			if _, dup := seen[t]; dup {
				return WeeklyTemplate{}, errs.Wrapf(ErrDuplicateSlot, "slot %q on day %d", t, day)
			}
			seen[t] = struct{}{}
			sorted = append(sorted, t)
		}
		sort.Strings(sorted)
		normalized[day] = sorted
		total += len(sorted)
	}

	if total == 0 {
		return WeeklyTemplate{}, ErrEmptyTemplate
	}

	return WeeklyTemplate{slots: normalized}, nil
}

// ReconstructWeeklyTemplate rebuilds a template from storage without
// re-validating. Storage only ever holds templates that passed
// NewWeeklyTemplate.
func ReconstructWeeklyTemplate(raw map[int][]string) WeeklyTemplate {
	return WeeklyTemplate{slots: raw}
}

func (t WeeklyTemplate) Raw() map[int][]string {
	out := make(map[int][]string, len(t.slots))
	for day, times := range t.slots {
		out[day] = append([]string(nil), times...)
	}
	return out
}

func (t WeeklyTemplate) IsZero() bool {
	return t.slots == nil
}

// Expand converts the weekly template into concrete bookable instants over
// windowDays starting from now's UTC date. Instants strictly before now are
// dropped, so a slot earlier today that has already passed is excluded while
// next week's occurrence survives. Output is ordered day-then-time by
// construction.
func (t WeeklyTemplate) Expand(now time.Time, windowDays int) []time.Time {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var instants []time.Time
	for i := 0; i < windowDays; i++ {
		date := today.AddDate(0, 0, i)
		times, ok := t.slots[int(date.Weekday())]
		if !ok {
			continue
		}
		for _, hhmm := range times {
			hours, minutes := mustParseSlot(hhmm)
			instant := date.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
			if instant.Before(now) {
				continue
			}
			instants = append(instants, instant)
		}
	}
	return instants
}

// Contains reports whether instant is one of the expanded bookable instants
// within the window.
func (t WeeklyTemplate) Contains(instant, now time.Time, windowDays int) bool {
	instant = instant.UTC()
	for _, candidate := range t.Expand(now, windowDays) {
		if candidate.Equal(instant) {
			return true
		}
	}
	return false
}

// mustParseSlot assumes the HH:MM shape was enforced at construction.
func mustParseSlot(hhmm string) (int, int) {
	hours, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		panic(fmt.Sprintf("corrupt availability slot %q: %v", hhmm, err))
	}
	minutes, err := strconv.Atoi(hhmm[3:])
	if err != nil {
		panic(fmt.Sprintf("corrupt availability slot %q: %v", hhmm, err))
	}
	return hours, minutes
}
