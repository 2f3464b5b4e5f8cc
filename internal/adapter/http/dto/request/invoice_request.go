package request

// CreateInvoiceRequest records the billable figures for a production project.
// Zero pozotron_rate/est_tax_rate means the finance defaults apply.

type CreateInvoiceRequest struct {
	ProjectID     string  `json:"project_id" binding:"required"`
	TotalAmount   float64 `json:"total_amount" binding:"required"`
	PozotronRate  float64 `json:"pozotron_rate"`
	PFHCount      float64 `json:"pfh_count"`
	OtherExpenses float64 `json:"other_expenses"`
	EstTaxRate    float64 `json:"est_tax_rate"`
}
