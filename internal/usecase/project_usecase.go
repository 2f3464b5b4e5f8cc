package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/pipeline"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrMissingProjectFields  = errors.New("book_title and client_name are required")
	ErrRejectNotConfirmed    = errors.New("reject requires explicit confirmation")
	ErrInvalidProjectStatus  = errors.New("invalid project status")
	ErrInvalidProducerOnBook = errors.New("roster bookings require a producer")
)

// CreateProjectInput carries the audition-intake draft fields.

type CreateProjectInput struct {
	BookTitle       string
	ClientName      string
	Email           string
	ClientType      entities.ClientType
	WordCount       int
	DaysNeeded      int
	NarrationStyle  string
	DiscountApplied bool
	Notes           string
	StartDate       time.Time
	EndDate         time.Time
}

// IProjectUseCase exposes the booking/production pipeline operations.
//
// Mutations return the stored row as the record store saw it; callers are
// expected to re-fetch the list afterwards (List* are the refresh contract)
// rather than patching any local copy.

type IProjectUseCase interface {
	Create(ctx context.Context, in CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error)
	ListAuditions(ctx context.Context) ([]entities.Project, error)
	Approve(ctx context.Context, id string) (entities.Project, error)
	Reject(ctx context.Context, id string, confirmed bool) (entities.Project, error)
	Book(ctx context.Context, id string, bookingType entities.ClientType, producer string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, in CreateProjectInput) (entities.Project, error) {
	in.BookTitle = strings.TrimSpace(in.BookTitle)
	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.BookTitle == "" || in.ClientName == "" {
		return entities.Project{}, ErrMissingProjectFields
	}

	now := time.Now().UTC()
	start, end := in.StartDate, in.EndDate
	if start.IsZero() {
		start = now
	}
	if end.IsZero() {
		end = now
	}
	clientType := in.ClientType
	if clientType == "" {
		// Audition intake is the default entry path.
		clientType = entities.ClientTypeAudition
	}

	p := entities.Project{
		ID:              uuid.NewString(),
		Status:          entities.ProjectStatusPending,
		ClientType:      clientType,
		BookTitle:       in.BookTitle,
		ClientName:      in.ClientName,
		Email:           strings.TrimSpace(in.Email),
		WordCount:       in.WordCount,
		DaysNeeded:      in.DaysNeeded,
		NarrationStyle:  strings.TrimSpace(in.NarrationStyle),
		DiscountApplied: in.DiscountApplied,
		Notes:           in.Notes,
		StartDate:       start,
		EndDate:         end,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.ListAll(ctx)
}

func (u *ProjectUseCase) ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	switch status {
	case entities.ProjectStatusPending, entities.ProjectStatusOnboarding, entities.ProjectStatusProduction, entities.ProjectStatusArchive:
	default:
		return nil, ErrInvalidProjectStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

// ListAuditions is the audition-intake view: pending projects sourced from
// auditions.
func (u *ProjectUseCase) ListAuditions(ctx context.Context) ([]entities.Project, error) {
	pending, err := u.repo.ListByStatus(ctx, entities.ProjectStatusPending)
	if err != nil {
		return nil, err
	}
	auditions := make([]entities.Project, 0, len(pending))
	for _, p := range pending {
		if p.ClientType == entities.ClientTypeAudition {
			auditions = append(auditions, p)
		}
	}
	return auditions, nil
}

func (u *ProjectUseCase) Approve(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	next, err := pipeline.Approve(p.Status)
	if err != nil {
		return entities.Project{}, err
	}
	return u.persistStatus(ctx, p.ID, next)
}

// Reject archives a project. Destructive and terminal, so the caller must
// pass confirmed=true before any remote call is made. Rejecting an already
// archived project returns the row untouched.
func (u *ProjectUseCase) Reject(ctx context.Context, id string, confirmed bool) (entities.Project, error) {
	if !confirmed {
		return entities.Project{}, ErrRejectNotConfirmed
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	next, err := pipeline.Reject(p.Status)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status == entities.ProjectStatusArchive {
		return p, nil
	}

	log.Printf("[project][usecase] archiving project id=%s from=%s", p.ID, p.Status)
	return u.persistStatus(ctx, p.ID, next)
}

func (u *ProjectUseCase) Book(ctx context.Context, id string, bookingType entities.ClientType, producer string) (entities.Project, error) {
	producer = strings.TrimSpace(producer)
	if bookingType == entities.ClientTypeRoster && producer == "" {
		return entities.Project{}, ErrInvalidProducerOnBook
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	booking, err := pipeline.Book(p, bookingType, producer)
	if err != nil {
		return entities.Project{}, err
	}

	updated, err := u.repo.UpdateBooking(ctx, p.ID, booking)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) persistStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}
