package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type TutoryView struct {
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

type TutoryListItem struct {
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

type OrderView struct {
	ID               uuid.UUID `json:"id"`
	LearnerID        uuid.UUID `json:"learner_id"`
	LearnerName      string    `json:"learner_name"`
	TutoryID         uuid.UUID `json:"tutory_id"`
	TutoryName       string    `json:"tutory_name"`
	TutorID          uuid.UUID `json:"tutor_id"`
	TutorName        string    `json:"tutor_name"`
	SessionTime      time.Time `json:"session_time"`
	TotalHours       int       `json:"total_hours"`
	EstimatedEndTime time.Time `json:"estimated_end_time"`
	Price            int       `json:"price"`
	Status           string    `json:"status"`
	Note             *string   `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	LearnerName string    `json:"learner_name"`
	Rating      int       `json:"rating"`
	Message     *string   `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubjectView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Data      []byte     `json:"data,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
