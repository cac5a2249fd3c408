package readstore

import (
	"context"
	"encoding/json"
	"fmt"

	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type TutoryReadStore struct {
	db db.DBTX
}

func NewTutoryReadStore(pool db.DBTX) *TutoryReadStore {
	return &TutoryReadStore{db: pool}
}

func (r *TutoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TutoryView, error) {
	var (
		view         queries.TutoryView
		availability []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.tutor_id, u.name, t.subject_id, s.name,
		       t.name, t.about, t.methodology, t.hourly_rate, t.lesson_type,
		       t.availability, t.is_enabled, t.created_at, t.updated_at
		FROM tutories t
		JOIN users u ON u.id = t.tutor_id
		JOIN subjects s ON s.id = t.subject_id
		WHERE t.id = $1
	`, id).Scan(
		&view.ID, &view.TutorID, &view.TutorName, &view.SubjectID, &view.SubjectName,
		&view.Name, &view.About, &view.Methodology, &view.HourlyRate, &view.LessonType,
		&availability, &view.IsEnabled, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tutory by ID", err)
	}
	if err := json.Unmarshal(availability, &view.Availability); err != nil {
		return nil, infra.WrapRepoErr("failed to decode availability", err)
	}
	return &view, nil
}

func (r *TutoryReadStore) Search(ctx context.Context, filters queries.TutorySearchFilters) ([]*queries.TutoryListItem, error) {
	query := `
		SELECT t.id, t.tutor_id, u.name, s.name, t.name, t.hourly_rate, t.lesson_type,
		       AVG(rv.rating)::float8, COUNT(rv.id)
		FROM tutories t
		JOIN users u ON u.id = t.tutor_id
		JOIN subjects s ON s.id = t.subject_id
		LEFT JOIN reviews rv ON rv.tutory_id = t.id
		WHERE t.is_enabled`
	var args []any

	addCond := func(cond string, val any) {
		args = append(args, val)
		query += fmt.Sprintf(" AND "+cond, len(args))
	}
	if filters.SubjectID != nil {
		addCond("t.subject_id = $%d", *filters.SubjectID)
	}
	if filters.Category != nil {
		addCond("s.category = $%d", *filters.Category)
	}
	if filters.LessonType != nil {
		addCond("(t.lesson_type = $%d OR t.lesson_type = 'both')", *filters.LessonType)
	}
	if filters.Query != nil {
		args = append(args, *filters.Query)
		n := len(args)
		query += fmt.Sprintf(" AND (t.name ILIKE '%%' || $%d || '%%' OR u.name ILIKE '%%' || $%d || '%%')", n, n)
	}
	query += `
		GROUP BY t.id, t.tutor_id, u.name, s.name, t.name, t.hourly_rate, t.lesson_type
		ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search tutories", err)
	}
	defer rows.Close()

	var items []*queries.TutoryListItem
	for rows.Next() {
		var item queries.TutoryListItem
		if err := rows.Scan(
			&item.ID, &item.TutorID, &item.TutorName, &item.SubjectName,
			&item.Name, &item.HourlyRate, &item.LessonType,
			&item.AvgRating, &item.ReviewCount,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tutory row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tutories", err)
	}
	return items, nil
}

func (r *TutoryReadStore) ScheduledIntervalsByTutor(ctx context.Context, tutorID uuid.UUID) ([]tutory.BusyInterval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.session_time, o.estimated_end_time
		FROM orders o
		JOIN tutories t ON t.id = o.tutory_id
		WHERE t.tutor_id = $1 AND o.status = 'scheduled'
		ORDER BY o.session_time
	`, tutorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled intervals", err)
	}
	defer rows.Close()

	var intervals []tutory.BusyInterval
	for rows.Next() {
		var iv tutory.BusyInterval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scheduled intervals", err)
	}
	return intervals, nil
}
