package repository

import (
	"context"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

var _ shared.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO orders (id, learner_id, tutory_id, session_time, total_hours, estimated_end_time, price, status, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		 RETURNING id`,
		o.ID(), o.LearnerID(), o.TutoryID(), o.SessionTime(), o.TotalHours(),
		o.EstimatedEndTime(), o.Price(), o.Status().String(), o.Note(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}
	return id, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status order.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found for status update", nil, infra.KindNotFound)
	}
	return nil
}
