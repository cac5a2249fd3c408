//go:build unit || e2e

package builder

import (
	domtutory "tutorlink/internal/domain/tutory"

	"github.com/google/uuid"
)

type TutoryBuilder struct {
	TutorID      uuid.UUID
	SubjectID    uuid.UUID
	Name         string
	About        string
	Methodology  string
	HourlyRate   int
	LessonType   string
	Availability map[int][]string
}

func NewTutoryBuilder() *TutoryBuilder {
	return &TutoryBuilder{
		TutorID:     uuid.New(),
		SubjectID:   uuid.New(),
		Name:        "Algebra Basics",
		About:       "Foundations of algebra for secondary school students",
		Methodology: "Worked examples followed by guided exercises",
		HourlyRate:  50,
		LessonType:  "online",
		Availability: map[int][]string{
			1: {"09:00", "14:00"},
			3: {"10:00"},
		},
	}
}

func (b *TutoryBuilder) With(mutate func(*TutoryBuilder)) *TutoryBuilder {
	mutate(b)
	return b
}

func (b *TutoryBuilder) WithAvailability(raw map[int][]string) *TutoryBuilder {
	b.Availability = raw
	return b
}

func (b *TutoryBuilder) WithHourlyRate(rate int) *TutoryBuilder {
	b.HourlyRate = rate
	return b
}

func (b *TutoryBuilder) BuildDomain() (*domtutory.Tutory, error) {
	lessonType, err := domtutory.NewLessonType(b.LessonType)
	if err != nil {
		return nil, err
	}
	template, err := domtutory.NewWeeklyTemplate(b.Availability)
	if err != nil {
		return nil, err
	}
	return domtutory.NewTutory(b.TutorID, b.SubjectID, b.Name, b.About, b.Methodology, b.HourlyRate, lessonType, template)
}

func (b *TutoryBuilder) BuildTemplate() (domtutory.WeeklyTemplate, error) {
	return domtutory.NewWeeklyTemplate(b.Availability)
}
