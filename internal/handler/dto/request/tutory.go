package request

import (
	"tutorlink/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTutoryRequest struct {
	SubjectID    uuid.UUID        `json:"subject_id" binding:"required"`
	Name         string           `json:"name" binding:"required,max=100"`
	About        string           `json:"about" binding:"max=2000"`
	Methodology  string           `json:"methodology" binding:"max=2000"`
	HourlyRate   int              `json:"hourly_rate" binding:"required,gt=0"`
	LessonType   string           `json:"lesson_type" binding:"required,oneof=online offline both"`
	Availability map[int][]string `json:"availability" binding:"required"`
}

func (r CreateTutoryRequest) ToInput() commands.CreateTutoryInput {
	return commands.CreateTutoryInput{
		SubjectID:    r.SubjectID,
		Name:         r.Name,
		About:        r.About,
		Methodology:  r.Methodology,
		HourlyRate:   r.HourlyRate,
		LessonType:   r.LessonType,
		Availability: r.Availability,
	}
}

type UpdateTutoryRequest struct {
	About        *string          `json:"about,omitempty" binding:"omitempty,max=2000"`
	Methodology  *string          `json:"methodology,omitempty" binding:"omitempty,max=2000"`
	HourlyRate   *int             `json:"hourly_rate,omitempty" binding:"omitempty,gt=0"`
	LessonType   *string          `json:"lesson_type,omitempty" binding:"omitempty,oneof=online offline both"`
	Availability map[int][]string `json:"availability,omitempty"`
	IsEnabled    *bool            `json:"is_enabled,omitempty"`
}

func (r UpdateTutoryRequest) ToInput() commands.UpdateTutoryInput {
	return commands.UpdateTutoryInput{
		About:        r.About,
		Methodology:  r.Methodology,
		HourlyRate:   r.HourlyRate,
		LessonType:   r.LessonType,
		Availability: r.Availability,
		IsEnabled:    r.IsEnabled,
	}
}
