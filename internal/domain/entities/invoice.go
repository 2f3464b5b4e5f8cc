package entities

import "time"

// Invoice is the billing record attached to a production project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Invoices are inputs to the pipeline income summary and are never mutated by
// it. PozotronRate and EstTaxRate are per-invoice overrides; when zero the
// finance defaults apply (see internal/domain/finance).

type Invoice struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`

	TotalAmount   float64 `json:"total_amount"`
	PozotronRate  float64 `json:"pozotron_rate,omitempty"`
	PFHCount      float64 `json:"pfh_count,omitempty"`
	OtherExpenses float64 `json:"other_expenses,omitempty"`
	EstTaxRate    float64 `json:"est_tax_rate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
