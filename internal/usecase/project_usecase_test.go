package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/pipeline"
	mock_interfaces "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Create(context.Background(), CreateProjectInput{BookTitle: "  ", ClientName: "Acme Audio"})
		if !errors.Is(err, ErrMissingProjectFields) {
			t.Fatalf("expected ErrMissingProjectFields, got %v", err)
		}
		_, err = uc.Create(context.Background(), CreateProjectInput{BookTitle: "The Long Night"})
		if !errors.Is(err, ErrMissingProjectFields) {
			t.Fatalf("expected ErrMissingProjectFields, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.Status != entities.ProjectStatusPending {
					t.Fatalf("expected pending, got %q", p.Status)
				}
				if p.ClientType != entities.ClientTypeAudition {
					t.Fatalf("expected audition intake default, got %q", p.ClientType)
				}
				if p.StartDate.IsZero() || !p.StartDate.Equal(p.EndDate) {
					t.Fatalf("expected start_date == end_date == now, got %v / %v", p.StartDate, p.EndDate)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateProjectInput{
			BookTitle:  " The Long Night ",
			ClientName: "Acme Audio",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BookTitle != "The Long Night" {
			t.Fatalf("expected trimmed title, got %q", res.BookTitle)
		}
	})

	t.Run("round trip preserves required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		var stored entities.Project
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				stored = p
				return p, nil
			},
		)
		created, err := uc.Create(context.Background(), CreateProjectInput{BookTitle: "Dust", ClientName: "Iris P."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), created.ID).Return(stored, nil)
		got, err := uc.GetByID(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.BookTitle != "Dust" || got.ClientName != "Iris P." || got.Status != entities.ProjectStatusPending {
			t.Fatalf("round trip mismatch: %+v", got)
		}
	})
}

func TestProjectUseCase_Approve(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Approve(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.Approve(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("pending moves to onboarding and nothing else changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		stored := entities.Project{ID: "p-1", Status: entities.ProjectStatusPending, BookTitle: "Dust"}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProjectStatusOnboarding).DoAndReturn(
			func(_ context.Context, _ string, status entities.ProjectStatus) (entities.Project, error) {
				updated := stored
				updated.Status = status
				return updated, nil
			},
		)

		res, err := uc.Approve(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProjectStatusOnboarding || res.BookTitle != "Dust" {
			t.Fatalf("unexpected project: %+v", res)
		}
	})

	t.Run("archived project cannot be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusArchive}, nil)

		_, err := uc.Approve(context.Background(), "p-1")
		if !errors.Is(err, pipeline.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestProjectUseCase_Reject(t *testing.T) {
	t.Run("requires confirmation before any remote call", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Reject(context.Background(), "p-1", false)
		if !errors.Is(err, ErrRejectNotConfirmed) {
			t.Fatalf("expected ErrRejectNotConfirmed, got %v", err)
		}
	})

	t.Run("archives from production", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusProduction}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProjectStatusArchive).Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusArchive}, nil)

		res, err := uc.Reject(context.Background(), "p-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProjectStatusArchive {
			t.Fatalf("expected archive, got %q", res.Status)
		}
	})

	t.Run("repeated reject is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		// No UpdateStatus expectation: an archived row stays untouched.
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusArchive}, nil)

		res, err := uc.Reject(context.Background(), "p-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProjectStatusArchive {
			t.Fatalf("expected archive, got %q", res.Status)
		}
	})

	t.Run("remote failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProjectStatusArchive).Return(entities.Project{}, errors.New("db"))

		_, err := uc.Reject(context.Background(), "p-1", true)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProjectUseCase_Book(t *testing.T) {
	audition := entities.Project{ID: "p-1", Status: entities.ProjectStatusPending, ClientType: entities.ClientTypeAudition}

	t.Run("direct booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(audition, nil)
		repo.EXPECT().UpdateBooking(gomock.Any(), "p-1", pipeline.Booking{
			Status:           entities.ProjectStatusProduction,
			ClientType:       entities.ClientTypeDirect,
			ProductionStatus: entities.ProductionStatusPreProduction,
		}).Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusProduction, ClientType: entities.ClientTypeDirect, ProductionStatus: entities.ProductionStatusPreProduction}, nil)

		res, err := uc.Book(context.Background(), "p-1", entities.ClientTypeDirect, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClientType != entities.ClientTypeDirect || res.ProductionStatus != entities.ProductionStatusPreProduction {
			t.Fatalf("unexpected project: %+v", res)
		}
	})

	t.Run("roster booking requires a producer", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Book(context.Background(), "p-1", entities.ClientTypeRoster, "   ")
		if !errors.Is(err, ErrInvalidProducerOnBook) {
			t.Fatalf("expected ErrInvalidProducerOnBook, got %v", err)
		}
	})

	t.Run("roster booking keeps the producer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(audition, nil)
		repo.EXPECT().UpdateBooking(gomock.Any(), "p-1", pipeline.Booking{
			Status:           entities.ProjectStatusProduction,
			ClientType:       entities.ClientTypeRoster,
			ProductionStatus: entities.ProductionStatusPreProduction,
			RosterProducer:   "Podium Audio",
		}).Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusProduction, ClientType: entities.ClientTypeRoster, RosterProducer: "Podium Audio"}, nil)

		res, err := uc.Book(context.Background(), "p-1", entities.ClientTypeRoster, " Podium Audio ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RosterProducer != "Podium Audio" {
			t.Fatalf("expected producer preserved, got %+v", res)
		}
	})

	t.Run("non-audition project cannot be booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := audition
		p.ClientType = entities.ClientTypeDirect
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.Book(context.Background(), "p-1", entities.ClientTypeDirect, "")
		if !errors.Is(err, pipeline.ErrNotAudition) {
			t.Fatalf("expected ErrNotAudition, got %v", err)
		}
	})
}

func TestProjectUseCase_Lists(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.ListByStatus(context.Background(), entities.ProjectStatus("bogus"))
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("auditions view filters client type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.ProjectStatusPending).Return([]entities.Project{
			{ID: "a", ClientType: entities.ClientTypeAudition},
			{ID: "b", ClientType: entities.ClientTypeDirect},
			{ID: "c", ClientType: entities.ClientTypeAudition},
		}, nil)

		res, err := uc.ListAuditions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "a" || res[1].ID != "c" {
			t.Fatalf("unexpected auditions: %+v", res)
		}
	})
}
