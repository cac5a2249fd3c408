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

// CommandReads serves snapshot reads for command validation. It holds the
// executor it was built with: the pool for lock-free reads, the transaction
// for the ForUpdate variants.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

func (r *CommandReads) TutoryByID(ctx context.Context, id uuid.UUID) (*shared.TutorySnapshot, error) {
	var (
		snap         shared.TutorySnapshot
		availability []byte
	)
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, tutor_id, subject_id, name, about, methodology,
		       hourly_rate, lesson_type, availability, is_enabled
		FROM tutories
		WHERE id = $1
	`, id).Scan(
		&snap.ID, &snap.TutorID, &snap.SubjectID, &snap.Name, &snap.About,
		&snap.Methodology, &snap.HourlyRate, &snap.LessonType, &availability, &snap.IsEnabled,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get tutory", err)
	}
	if err := json.Unmarshal(availability, &snap.Availability); err != nil {
		return nil, infra.WrapRepoErr("failed to decode availability", err)
	}
	return &snap, nil
}

const orderSnapshotColumns = `
	o.id, o.learner_id, o.tutory_id, t.tutor_id, o.session_time,
	o.total_hours, o.estimated_end_time, o.price, o.status, COALESCE(o.note, '')`

func (r *CommandReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	return r.orderByID(ctx, id, false)
}

func (r *CommandReads) OrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	return r.orderByID(ctx, id, true)
}

func (r *CommandReads) orderByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.OrderSnapshot, error) {
	query := `
		SELECT ` + orderSnapshotColumns + `
		FROM orders o
		JOIN tutories t ON t.id = o.tutory_id
		WHERE o.id = $1`
	if forUpdate {
		// Lock only the order row; the tutory row stays shared.
		query += ` FOR UPDATE OF o`
	}

	var snap shared.OrderSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.LearnerID, &snap.TutoryID, &snap.TutorID, &snap.SessionTime,
		&snap.TotalHours, &snap.EstimatedEndTime, &snap.Price, &snap.Status, &snap.Note,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return &snap, nil
}

func (r *CommandReads) PendingOrdersByTutoryForUpdate(ctx context.Context, tutoryID uuid.UUID) ([]*shared.OrderSnapshot, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT `+orderSnapshotColumns+`
		FROM orders o
		JOIN tutories t ON t.id = o.tutory_id
		WHERE o.tutory_id = $1 AND o.status = 'pending'
		ORDER BY o.created_at
		FOR UPDATE OF o
	`, tutoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending orders", err)
	}
	defer rows.Close()

	var snaps []*shared.OrderSnapshot
	for rows.Next() {
		var snap shared.OrderSnapshot
		if err := rows.Scan(
			&snap.ID, &snap.LearnerID, &snap.TutoryID, &snap.TutorID, &snap.SessionTime,
			&snap.TotalHours, &snap.EstimatedEndTime, &snap.Price, &snap.Status, &snap.Note,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending order", err)
		}
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending orders", err)
	}
	return snaps, nil
}

func (r *CommandReads) ScheduledIntervalsByTutor(ctx context.Context, tutorID uuid.UUID) ([]tutory.BusyInterval, error) {
	rows, err := r.dbtx.Query(ctx, `
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

func (r *CommandReads) ReviewExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var exists bool
	err := r.dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE order_id = $1)`,
		orderID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
