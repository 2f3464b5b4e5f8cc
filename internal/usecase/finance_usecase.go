package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/finance"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvalidInvoiceID      = errors.New("invalid invoice id")
	ErrInvalidInvoiceProject = errors.New("invalid invoice project_id")
	ErrInvalidInvoiceAmount  = errors.New("invalid invoice amount")
	ErrInvalidInvoiceRates   = errors.New("invoice rates must not be negative")
	ErrProjectNotBillable    = errors.New("project is not in production")
)

// CreateInvoiceInput carries the billable figures for one production project.
// Zero PozotronRate/EstTaxRate means "use the finance defaults".

type CreateInvoiceInput struct {
	ProjectID     string
	TotalAmount   float64
	PozotronRate  float64
	PFHCount      float64
	OtherExpenses float64
	EstTaxRate    float64
}

// IFinanceUseCase exposes invoice persistence plus the derived pipeline
// summary. Summary always recomputes from the full current invoice set; there
// is no cached aggregate anywhere.

type IFinanceUseCase interface {
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error)
	Summary(ctx context.Context) (finance.Summary, error)
}

type FinanceUseCase struct {
	repo        interfaces.IInvoiceRepository
	projectRepo interfaces.IProjectRepository
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.IInvoiceRepository, projectRepo interfaces.IProjectRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *FinanceUseCase) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	if in.ProjectID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceProject
	}
	if in.TotalAmount <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	if in.PozotronRate < 0 || in.PFHCount < 0 || in.OtherExpenses < 0 || in.EstTaxRate < 0 {
		return entities.Invoice{}, ErrInvalidInvoiceRates
	}

	// Only production work is billable.
	p, err := u.projectRepo.GetByID(ctx, in.ProjectID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if p.ID == "" {
		return entities.Invoice{}, ErrProjectNotFound
	}
	if p.Status != entities.ProjectStatusProduction {
		return entities.Invoice{}, ErrProjectNotBillable
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		ProjectID:     in.ProjectID,
		TotalAmount:   in.TotalAmount,
		PozotronRate:  in.PozotronRate,
		PFHCount:      in.PFHCount,
		OtherExpenses: in.OtherExpenses,
		EstTaxRate:    in.EstTaxRate,
		CreatedAt:     time.Now().UTC(),
	}
	return u.repo.Create(ctx, inv)
}

func (u *FinanceUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *FinanceUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidInvoiceProject
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// Summary fetches every invoice and reduces them to pipeline totals. An empty
// invoice set surfaces finance.ErrNoActivePipeline rather than a zero summary.
func (u *FinanceUseCase) Summary(ctx context.Context) (finance.Summary, error) {
	invoices, err := u.repo.ListAll(ctx)
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.Aggregate(invoices)
}
