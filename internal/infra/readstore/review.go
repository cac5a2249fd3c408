package readstore

import (
	"context"

	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(pool db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: pool}
}

func (r *ReviewReadStore) FindByTutoryID(ctx context.Context, tutoryID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rv.id, rv.order_id, u.name, rv.rating, rv.message, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.learner_id
		WHERE rv.tutory_id = $1
		ORDER BY rv.created_at DESC
	`, tutoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		var view queries.ReviewView
		if err := rows.Scan(
			&view.ID, &view.OrderID, &view.LearnerName,
			&view.Rating, &view.Message, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return views, nil
}

type SubjectReadStore struct {
	db db.DBTX
}

func NewSubjectReadStore(pool db.DBTX) *SubjectReadStore {
	return &SubjectReadStore{db: pool}
}

func (r *SubjectReadStore) FindAll(ctx context.Context) ([]*queries.SubjectView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category FROM subjects ORDER BY category, name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subjects", err)
	}
	defer rows.Close()

	var views []*queries.SubjectView
	for rows.Next() {
		var view queries.SubjectView
		if err := rows.Scan(&view.ID, &view.Name, &view.Category); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subject row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subjects", err)
	}
	return views, nil
}
