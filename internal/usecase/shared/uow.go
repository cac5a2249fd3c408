package shared

import (
	"context"
	"time"

	"tutorlink/internal/domain/order"
	"tutorlink/internal/domain/review"
	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-write transaction with retry on serialization
	// failures. The accept cascade depends on this running as one unit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Tutories() TutoryRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Devices() DeviceRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal snapshot reads commands need for validation
// and locking. ForUpdate variants must run inside Within.
type CommandReads interface {
	TutoryByID(ctx context.Context, id uuid.UUID) (*TutorySnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	OrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	PendingOrdersByTutoryForUpdate(ctx context.Context, tutoryID uuid.UUID) ([]*OrderSnapshot, error)
	ScheduledIntervalsByTutor(ctx context.Context, tutorID uuid.UUID) ([]tutory.BusyInterval, error)
	ReviewExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
}

// TutorySnapshot carries the fields commands need to admit and price an
// order; TutorID is resolved through the owning tutor join.
type TutorySnapshot struct {
	ID           uuid.UUID
	TutorID      uuid.UUID
	SubjectID    uuid.UUID
	Name         string
	About        string
	Methodology  string
	HourlyRate   int
	LessonType   string
	Availability map[int][]string
	IsEnabled    bool
}

type OrderSnapshot struct {
	ID               uuid.UUID
	LearnerID        uuid.UUID
	TutoryID         uuid.UUID
	TutorID          uuid.UUID
	SessionTime      time.Time
	TotalHours       int
	EstimatedEndTime time.Time
	Price            int
	Status           order.Status
	Note             string
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status order.Status) error
}

type TutoryRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *tutory.Tutory) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, t *tutory.Tutory) error
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *review.Review) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

// NotificationRecord is the persisted inbox entry; push delivery rides on
// top of it and is allowed to fail independently.
type NotificationRecord struct {
	UserID  uuid.UUID
	Type    string
	Title   string
	Message string
	Data    []byte
}

type NotificationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, n NotificationRecord) (uuid.UUID, error)
	MarkRead(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) error
}

type DeviceRepository interface {
	Upsert(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, token, deviceName string) error
	DeleteByToken(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, token string) error
}
