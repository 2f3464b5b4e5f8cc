package interfaces

import (
	"context"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/pipeline"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// The pipeline manager must be able to:
//   - create a project at audition intake (status pending)
//   - list the pipeline (full, or filtered by status) — callers re-fetch the
//     list after every mutation instead of patching local state
//   - apply a single-status write (approve/reject)
//   - apply the booking mutation computed by the transition engine

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListAll(ctx context.Context) ([]entities.Project, error)
	ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	UpdateBooking(ctx context.Context, id string, booking pipeline.Booking) (entities.Project, error)
}
