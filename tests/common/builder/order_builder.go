//go:build unit || e2e

package builder

import (
	"time"

	domorder "tutorlink/internal/domain/order"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID          uuid.UUID
	LearnerID   uuid.UUID
	TutoryID    uuid.UUID
	TutorID     uuid.UUID
	SessionTime time.Time
	TotalHours  int
	HourlyRate  int
	Status      domorder.Status
	Note        string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:          uuid.New(),
		LearnerID:   uuid.New(),
		TutoryID:    uuid.New(),
		TutorID:     uuid.New(),
		SessionTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		TotalHours:  2,
		HourlyRate:  50,
		Status:      domorder.StatusPending,
		Note:        "",
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithSessionTime(t time.Time) *OrderBuilder {
	b.SessionTime = t
	return b
}

func (b *OrderBuilder) WithStatus(s domorder.Status) *OrderBuilder {
	b.Status = s
	return b
}

func (b *OrderBuilder) WithTotalHours(h int) *OrderBuilder {
	b.TotalHours = h
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	o, err := domorder.NewOrder(b.LearnerID, b.TutoryID, b.SessionTime, b.TotalHours, b.HourlyRate, b.Note)
	if err != nil {
		return nil, err
	}
	if b.Status == domorder.StatusPending {
		return o, nil
	}
	return domorder.ReconstructOrder(
		o.ID(), b.LearnerID, b.TutoryID,
		o.SessionTime(), b.TotalHours, o.EstimatedEndTime(), o.Price(),
		b.Status, o.Note(), time.Time{}, time.Time{},
	), nil
}

func (b *OrderBuilder) BuildSnapshot() *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:               b.ID,
		LearnerID:        b.LearnerID,
		TutoryID:         b.TutoryID,
		TutorID:          b.TutorID,
		SessionTime:      b.SessionTime,
		TotalHours:       b.TotalHours,
		EstimatedEndTime: b.SessionTime.Add(time.Duration(b.TotalHours) * time.Hour),
		Price:            b.HourlyRate * b.TotalHours,
		Status:           b.Status,
		Note:             b.Note,
	}
}
