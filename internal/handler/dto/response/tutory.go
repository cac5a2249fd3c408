package response

import (
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TutoryResponse struct {
	ID           uuid.UUID        `json:"id"`
	TutorID      uuid.UUID        `json:"tutor_id"`
	TutorName    string           `json:"tutor_name"`
	SubjectID    uuid.UUID        `json:"subject_id"`
	SubjectName  string           `json:"subject_name"`
	Name         string           `json:"name"`
	About        string           `json:"about"`
	Methodology  string           `json:"methodology"`
	HourlyRate   int              `json:"hourly_rate"`
	LessonType   string           `json:"lesson_type"`
	Availability map[int][]string `json:"availability"`
	IsEnabled    bool             `json:"is_enabled"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type TutoryListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	TutorID     uuid.UUID `json:"tutor_id"`
	TutorName   string    `json:"tutor_name"`
	SubjectName string    `json:"subject_name"`
	Name        string    `json:"name"`
	HourlyRate  int       `json:"hourly_rate"`
	LessonType  string    `json:"lesson_type"`
	AvgRating   *float64  `json:"avg_rating,omitempty"`
	ReviewCount int       `json:"review_count"`
}

type AvailabilityResponse struct {
	TutoryID   uuid.UUID   `json:"tutory_id"`
	WindowDays int         `json:"window_days"`
	Instants   []time.Time `json:"instants"`
}

type SubjectResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func FromTutoryView(v *queries.TutoryView) *TutoryResponse {
	var resp TutoryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromTutoryListItems(items []*queries.TutoryListItem) []*TutoryListItemResponse {
	resp := make([]*TutoryListItemResponse, len(items))
	for i, item := range items {
		var r TutoryListItemResponse
		_ = copier.Copy(&r, item)
		resp[i] = &r
	}
	return resp
}

func FromSubjectViews(views []*queries.SubjectView) []*SubjectResponse {
	resp := make([]*SubjectResponse, len(views))
	for i, v := range views {
		resp[i] = &SubjectResponse{ID: v.ID, Name: v.Name, Category: v.Category}
	}
	return resp
}
