package commands

import (
	"context"

	"tutorlink/internal/domain/tutory"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSubjectNotFound = errs.New("subject does not exist")
)

type CreateTutoryInput struct {
	SubjectID    uuid.UUID
	Name         string
	About        string
	Methodology  string
	HourlyRate   int
	LessonType   string
	Availability map[int][]string
}

type UpdateTutoryInput struct {
	About        *string
	Methodology  *string
	HourlyRate   *int
	LessonType   *string
	Availability map[int][]string
	IsEnabled    *bool
}

type TutoryCommands interface {
	CreateTutory(ctx context.Context, tutorID uuid.UUID, input CreateTutoryInput) (uuid.UUID, error)
	UpdateTutory(ctx context.Context, tutorID, tutoryID uuid.UUID, input UpdateTutoryInput) error
}

type tutoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTutoryCommands(uow shared.UnitOfWork) TutoryCommands {
	return &tutoryCommandsImpl{uow: uow}
}

func (c *tutoryCommandsImpl) CreateTutory(ctx context.Context, tutorID uuid.UUID, input CreateTutoryInput) (uuid.UUID, error) {
	lessonType, err := tutory.NewLessonType(input.LessonType)
	if err != nil {
		return uuid.Nil, err
	}

	template, err := tutory.NewWeeklyTemplate(input.Availability)
	if err != nil {
		return uuid.Nil, err
	}

	entity, err := tutory.NewTutory(
		tutorID,
		input.SubjectID,
		input.Name,
		input.About,
		input.Methodology,
		input.HourlyRate,
		lessonType,
		template,
	)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, txErr := tx.Tutories().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrSubjectNotFound
		}
		return uuid.Nil, errs.Wrap(err, "failed to create tutory")
	}

	return id, nil
}

func (c *tutoryCommandsImpl) UpdateTutory(ctx context.Context, tutorID, tutoryID uuid.UUID, input UpdateTutoryInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().TutoryByID(ctx, tutoryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTutoryNotFound
			}
			return err
		}
		if snap.TutorID != tutorID {
			return ErrNotTutoryOwner
		}

		merged, err := mergeTutoryUpdate(snap, input)
		if err != nil {
			return err
		}

		return tx.Tutories().Update(ctx, tx.DB(), merged)
	})
}

// mergeTutoryUpdate applies the partial update over the stored snapshot and
// revalidates through the domain constructors.
func mergeTutoryUpdate(snap *shared.TutorySnapshot, input UpdateTutoryInput) (*tutory.Tutory, error) {
	about := snap.About
	if input.About != nil {
		about = *input.About
	}
	methodology := snap.Methodology
	if input.Methodology != nil {
		methodology = *input.Methodology
	}
	hourlyRate := snap.HourlyRate
	if input.HourlyRate != nil {
		hourlyRate = *input.HourlyRate
	}
	lessonTypeStr := snap.LessonType
	if input.LessonType != nil {
		lessonTypeStr = *input.LessonType
	}
	availability := snap.Availability
	if input.Availability != nil {
		availability = input.Availability
	}

	lessonType, err := tutory.NewLessonType(lessonTypeStr)
	if err != nil {
		return nil, err
	}
	template, err := tutory.NewWeeklyTemplate(availability)
	if err != nil {
		return nil, err
	}

	entity, err := tutory.NewTutory(
		snap.TutorID,
		snap.SubjectID,
		snap.Name,
		about,
		methodology,
		hourlyRate,
		lessonType,
		template,
	)
	if err != nil {
		return nil, err
	}

	isEnabled := snap.IsEnabled
	if input.IsEnabled != nil {
		isEnabled = *input.IsEnabled
	}

	return tutory.ReconstructTutory(
		snap.ID,
		entity.TutorID(),
		entity.SubjectID(),
		entity.Name(),
		entity.About(),
		entity.Methodology(),
		entity.HourlyRate(),
		entity.LessonType(),
		entity.Availability(),
		isEnabled,
		entity.CreatedAt(),
		entity.UpdatedAt(),
	), nil
}
