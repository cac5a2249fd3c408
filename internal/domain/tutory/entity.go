package tutory

import (
	"strings"
	"time"

	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errs.New("tutory name must not be empty")
	ErrInvalidHourlyRate  = errs.New("hourly rate must be positive")
	ErrInvalidLessonType  = errs.New("invalid lesson type")
)

// Tutory is a tutor's offering in one subject: a rate, a lesson type and a
// weekly recurring availability template.
type Tutory struct {
	id           uuid.UUID
	tutorID      uuid.UUID
	subjectID    uuid.UUID
	name         string
	about        string
	methodology  string
	hourlyRate   int
	lessonType   LessonType
	availability WeeklyTemplate
	isEnabled    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTutory(
	tutorID, subjectID uuid.UUID,
	name, about, methodology string,
	hourlyRate int,
	lessonType LessonType,
	availability WeeklyTemplate,
) (*Tutory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if hourlyRate <= 0 {
		return nil, ErrInvalidHourlyRate
	}
	if !lessonType.IsValid() {
		return nil, ErrInvalidLessonType
	}
	if availability.IsZero() {
		return nil, ErrEmptyTemplate
	}

	return &Tutory{
		id:           uuid.New(),
		tutorID:      tutorID,
		subjectID:    subjectID,
		name:         name,
		about:        about,
		methodology:  methodology,
		hourlyRate:   hourlyRate,
		lessonType:   lessonType,
		availability: availability,
		isEnabled:    true,
	}, nil
}

func ReconstructTutory(
	id, tutorID, subjectID uuid.UUID,
	name, about, methodology string,
	hourlyRate int,
	lessonType LessonType,
	availability WeeklyTemplate,
	isEnabled bool,
	createdAt, updatedAt time.Time,
) *Tutory {
	return &Tutory{
		id:           id,
		tutorID:      tutorID,
		subjectID:    subjectID,
		name:         name,
		about:        about,
		methodology:  methodology,
		hourlyRate:   hourlyRate,
		lessonType:   lessonType,
		availability: availability,
		isEnabled:    isEnabled,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// PriceFor computes the total price for a session of totalHours. Integer
// arithmetic, no rounding.
func (t *Tutory) PriceFor(totalHours int) int {
	return t.hourlyRate * totalHours
}

func (t *Tutory) IsOwnedBy(tutorID uuid.UUID) bool {
	return t.tutorID == tutorID
}

func (t *Tutory) ID() uuid.UUID                { return t.id }
func (t *Tutory) TutorID() uuid.UUID           { return t.tutorID }
func (t *Tutory) SubjectID() uuid.UUID         { return t.subjectID }
func (t *Tutory) Name() string                 { return t.name }
func (t *Tutory) About() string                { return t.about }
func (t *Tutory) Methodology() string          { return t.methodology }
func (t *Tutory) HourlyRate() int              { return t.hourlyRate }
func (t *Tutory) LessonType() LessonType       { return t.lessonType }
func (t *Tutory) Availability() WeeklyTemplate { return t.availability }
func (t *Tutory) IsEnabled() bool              { return t.isEnabled }
func (t *Tutory) CreatedAt() time.Time         { return t.createdAt }
func (t *Tutory) UpdatedAt() time.Time         { return t.updatedAt }
