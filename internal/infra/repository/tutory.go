package repository

import (
	"context"
	"encoding/json"

	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type TutoryRepository struct{}

func NewTutoryRepository() *TutoryRepository {
	return &TutoryRepository{}
}

var _ shared.TutoryRepository = (*TutoryRepository)(nil)

func (r *TutoryRepository) Create(ctx context.Context, dbtx db.DBTX, t *tutory.Tutory) (uuid.UUID, error) {
	availability, err := json.Marshal(t.Availability().Raw())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode availability template", err, infra.KindDBFailure)
	}

	var id uuid.UUID
	err = dbtx.QueryRow(ctx,
		`INSERT INTO tutories (id, tutor_id, subject_id, name, about, methodology, hourly_rate, lesson_type, availability, is_enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		t.ID(), t.TutorID(), t.SubjectID(), t.Name(), t.About(), t.Methodology(),
		t.HourlyRate(), t.LessonType().String(), availability, t.IsEnabled(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert tutory", err)
	}
	return id, nil
}

func (r *TutoryRepository) Update(ctx context.Context, dbtx db.DBTX, t *tutory.Tutory) error {
	availability, err := json.Marshal(t.Availability().Raw())
	if err != nil {
		return infra.WrapRepoErr("failed to encode availability template", err, infra.KindDBFailure)
	}

	tag, err := dbtx.Exec(ctx,
		`UPDATE tutories
		 SET about = $2, methodology = $3, hourly_rate = $4, lesson_type = $5,
		     availability = $6, is_enabled = $7, updated_at = now()
		 WHERE id = $1`,
		t.ID(), t.About(), t.Methodology(), t.HourlyRate(), t.LessonType().String(),
		availability, t.IsEnabled(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tutory", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tutory not found for update", nil, infra.KindNotFound)
	}
	return nil
}
