package readstore

import (
	"context"
	"fmt"

	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(pool db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: pool}
}

const orderViewSelect = `
	SELECT o.id, o.learner_id, l.name, o.tutory_id, t.name, t.tutor_id, tu.name,
	       o.session_time, o.total_hours, o.estimated_end_time, o.price, o.status,
	       o.note, o.created_at, o.updated_at
	FROM orders o
	JOIN users l ON l.id = o.learner_id
	JOIN tutories t ON t.id = o.tutory_id
	JOIN users tu ON tu.id = t.tutor_id`

func scanOrderView(row interface{ Scan(...any) error }) (*queries.OrderView, error) {
	var view queries.OrderView
	err := row.Scan(
		&view.ID, &view.LearnerID, &view.LearnerName, &view.TutoryID, &view.TutoryName,
		&view.TutorID, &view.TutorName, &view.SessionTime, &view.TotalHours,
		&view.EstimatedEndTime, &view.Price, &view.Status, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	view, err := scanOrderView(r.db.QueryRow(ctx, orderViewSelect+` WHERE o.id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return view, nil
}

func (r *OrderReadStore) FindByFilters(ctx context.Context, filters queries.OrderFilters) ([]*queries.OrderView, error) {
	query := orderViewSelect + ` WHERE true`
	var args []any

	addCond := func(cond string, val any) {
		args = append(args, val)
		query += fmt.Sprintf(" AND "+cond, len(args))
	}
	if filters.LearnerID != nil {
		addCond("o.learner_id = $%d", *filters.LearnerID)
	}
	if filters.TutorID != nil {
		addCond("t.tutor_id = $%d", *filters.TutorID)
	}
	if filters.TutoryID != nil {
		addCond("o.tutory_id = $%d", *filters.TutoryID)
	}
	if len(filters.Statuses) > 0 {
		statuses := make([]string, len(filters.Statuses))
		for i, s := range filters.Statuses {
			statuses[i] = string(s)
		}
		addCond("o.status = ANY($%d)", statuses)
	}
	query += ` ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return views, nil
}
