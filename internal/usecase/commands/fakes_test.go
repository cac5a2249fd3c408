//go:build unit

package commands_test

import (
	"context"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/domain/review"
	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	tutories     map[uuid.UUID]*shared.TutorySnapshot
	orders       map[uuid.UUID]*shared.OrderSnapshot
	pending      []*shared.OrderSnapshot
	busy         []tutory.BusyInterval
	reviewExists bool
}

func (f *fakeReads) TutoryByID(_ context.Context, id uuid.UUID) (*shared.TutorySnapshot, error) {
	snap, ok := f.tutories[id]
	if !ok {
		return nil, notFoundErr("tutory not found")
	}
	return snap, nil
}

func (f *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	snap, ok := f.orders[id]
	if !ok {
		return nil, notFoundErr("order not found")
	}
	return snap, nil
}

func (f *fakeReads) OrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	return f.OrderByID(ctx, id)
}

func (f *fakeReads) PendingOrdersByTutoryForUpdate(_ context.Context, tutoryID uuid.UUID) ([]*shared.OrderSnapshot, error) {
	var out []*shared.OrderSnapshot
	for _, snap := range f.pending {
		if snap.TutoryID == tutoryID && snap.Status == order.StatusPending {
			out = append(out, snap)
		}
	}
	return out, nil
}

func (f *fakeReads) ScheduledIntervalsByTutor(_ context.Context, _ uuid.UUID) ([]tutory.BusyInterval, error) {
	return f.busy, nil
}

func (f *fakeReads) ReviewExistsForOrder(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.reviewExists, nil
}

type statusChange struct {
	id     uuid.UUID
	status order.Status
}

type fakeOrderRepo struct {
	created []*order.Order
	changes []statusChange
}

func (f *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	f.created = append(f.created, o)
	return o.ID(), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status order.Status) error {
	f.changes = append(f.changes, statusChange{id: id, status: status})
	return nil
}

type fakeReviewRepo struct {
	created []*review.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, r *review.Review) (uuid.UUID, error) {
	f.created = append(f.created, r)
	return r.ID(), nil
}

type fakeTutoryRepo struct {
	created []*tutory.Tutory
	updated []*tutory.Tutory
}

func (f *fakeTutoryRepo) Create(_ context.Context, _ db.DBTX, t *tutory.Tutory) (uuid.UUID, error) {
	f.created = append(f.created, t)
	return t.ID(), nil
}

func (f *fakeTutoryRepo) Update(_ context.Context, _ db.DBTX, t *tutory.Tutory) error {
	f.updated = append(f.updated, t)
	return nil
}

type fakeUserRepo struct {
	created   []*user.User
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, u)
	return u.ID(), nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeNotificationRepo struct {
	records     []shared.NotificationRecord
	markedRead  []uuid.UUID
	markReadErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, n shared.NotificationRecord) (uuid.UUID, error) {
	f.records = append(f.records, n)
	return uuid.New(), nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ db.DBTX, id, _ uuid.UUID) error {
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.markedRead = append(f.markedRead, id)
	return nil
}

type registeredDevice struct {
	userID     uuid.UUID
	token      string
	deviceName string
}

type fakeDeviceRepo struct {
	upserted []registeredDevice
	deleted  []string
}

func (f *fakeDeviceRepo) Upsert(_ context.Context, _ db.DBTX, userID uuid.UUID, token, deviceName string) error {
	f.upserted = append(f.upserted, registeredDevice{userID: userID, token: token, deviceName: deviceName})
	return nil
}

func (f *fakeDeviceRepo) DeleteByToken(_ context.Context, _ db.DBTX, _ uuid.UUID, token string) error {
	for _, d := range f.upserted {
		if d.token == token {
			f.deleted = append(f.deleted, token)
			return nil
		}
	}
	return notFoundErr("device not found")
}

type fakeTx struct {
	reads         *fakeReads
	orders        *fakeOrderRepo
	reviews       *fakeReviewRepo
	tutories      *fakeTutoryRepo
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	devices       *fakeDeviceRepo
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		reads:         &fakeReads{tutories: map[uuid.UUID]*shared.TutorySnapshot{}, orders: map[uuid.UUID]*shared.OrderSnapshot{}},
		orders:        &fakeOrderRepo{},
		reviews:       &fakeReviewRepo{},
		tutories:      &fakeTutoryRepo{},
		users:         &fakeUserRepo{},
		notifications: &fakeNotificationRepo{},
		devices:       &fakeDeviceRepo{},
	}
}

func (f *fakeTx) Orders() shared.OrderRepository               { return f.orders }
func (f *fakeTx) Tutories() shared.TutoryRepository            { return f.tutories }
func (f *fakeTx) Reviews() shared.ReviewRepository             { return f.reviews }
func (f *fakeTx) Users() shared.UserRepository                 { return f.users }
func (f *fakeTx) Notifications() shared.NotificationRepository { return f.notifications }
func (f *fakeTx) Devices() shared.DeviceRepository             { return f.devices }
func (f *fakeTx) Reads() shared.CommandReads                   { return f.reads }
func (f *fakeTx) DB() db.DBTX                                  { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.tx.reads
}

type fakeNotifier struct {
	events  []commands.NotificationEvent
	failErr error
}

func (f *fakeNotifier) Notify(_ context.Context, event commands.NotificationEvent) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.events = append(f.events, event)
	return nil
}
