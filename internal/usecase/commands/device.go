package commands

import (
	"context"

	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
)

var ErrInvalidPushToken = errs.New("invalid expo push token")

type RegisterDeviceInput struct {
	Token      string
	DeviceName string
}

type DeviceCommands interface {
	RegisterDevice(ctx context.Context, userID uuid.UUID, input RegisterDeviceInput) error
	UnregisterDevice(ctx context.Context, userID uuid.UUID, token string) error
}

type deviceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewDeviceCommands(uow shared.UnitOfWork) DeviceCommands {
	return &deviceCommandsImpl{uow: uow}
}

func (c *deviceCommandsImpl) RegisterDevice(ctx context.Context, userID uuid.UUID, input RegisterDeviceInput) error {
	if _, err := expo.NewExponentPushToken(input.Token); err != nil {
		return ErrInvalidPushToken
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().Upsert(ctx, tx.DB(), userID, input.Token, input.DeviceName)
	})
}

func (c *deviceCommandsImpl) UnregisterDevice(ctx context.Context, userID uuid.UUID, token string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().DeleteByToken(ctx, tx.DB(), userID, token)
	})
}
