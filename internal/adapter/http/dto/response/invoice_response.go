package response

import (
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/finance"
)

// InvoiceResponse carries the stored figures plus the derived estimate so the
// dashboard never recomputes money math client-side.

type InvoiceResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	TotalAmount   float64   `json:"total_amount"`
	PozotronRate  float64   `json:"pozotron_rate,omitempty"`
	PFHCount      float64   `json:"pfh_count,omitempty"`
	OtherExpenses float64   `json:"other_expenses,omitempty"`
	EstTaxRate    float64   `json:"est_tax_rate,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	EstExpenses float64 `json:"est_expenses"`
	EstNet      float64 `json:"est_net"`
	EstTakeHome float64 `json:"est_take_home"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	b := finance.Compute(inv)
	return InvoiceResponse{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		TotalAmount:   inv.TotalAmount,
		PozotronRate:  inv.PozotronRate,
		PFHCount:      inv.PFHCount,
		OtherExpenses: inv.OtherExpenses,
		EstTaxRate:    inv.EstTaxRate,
		CreatedAt:     inv.CreatedAt,
		EstExpenses:   b.Expenses,
		EstNet:        b.Net,
		EstTakeHome:   b.TakeHome,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

// SummaryResponse is the pipeline-wide income estimate.

type SummaryResponse struct {
	Gross         float64 `json:"gross"`
	Net           float64 `json:"net"`
	TakeHome      float64 `json:"take_home"`
	PipelineCount int     `json:"pipeline_count"`
}

func FromSummary(s finance.Summary) SummaryResponse {
	return SummaryResponse{
		Gross:         s.Gross,
		Net:           s.Net,
		TakeHome:      s.TakeHome,
		PipelineCount: s.PipelineCount,
	}
}
