package repository

import (
	"context"

	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type DeviceRepository struct{}

func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{}
}

func (r *DeviceRepository) Upsert(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, token, deviceName string) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO devices (user_id, token, device_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, token)
		DO UPDATE SET device_name = EXCLUDED.device_name, updated_at = now()
	`, userID, token, deviceName)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert device", err)
	}
	return nil
}

func (r *DeviceRepository) DeleteByToken(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, token string) error {
	tag, err := dbtx.Exec(ctx,
		`DELETE FROM devices WHERE user_id = $1 AND token = $2`,
		userID, token,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete device", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("device not found", nil, infra.KindNotFound)
	}
	return nil
}
