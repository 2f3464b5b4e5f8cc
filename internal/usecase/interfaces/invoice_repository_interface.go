package interfaces

import (
	"context"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices are write-once: the income summary reads them, it never mutates
// them.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error)
	ListAll(ctx context.Context) ([]entities.Invoice, error)
}
