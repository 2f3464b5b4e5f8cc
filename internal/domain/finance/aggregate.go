package finance

import (
	"errors"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

// Pipeline income estimation.
//
// The constants below are this operator's own business assumptions, not
// general tax advice. They are deliberately named and exported so the one
// place they live is obvious.
const (
	// DefaultPozotronRate is the per-PFH proofing cost applied when an
	// invoice carries no explicit rate.
	DefaultPozotronRate = 14.0

	// DefaultTaxRatePercent is the estimated combined tax rate applied when
	// an invoice carries no explicit rate.
	DefaultTaxRatePercent = 25.0

	// QBIFactor models the qualified business income deduction as a flat 20%
	// reduction of net before the tax rate applies.
	QBIFactor = 0.8
)

// ErrNoActivePipeline distinguishes "no invoices at all" from a pipeline that
// genuinely sums to zero.
var ErrNoActivePipeline = errors.New("no active pipeline")

// Breakdown is the per-invoice income estimate.

type Breakdown struct {
	Gross    float64
	Expenses float64
	Net      float64
	Tax      float64
	TakeHome float64
}

// Summary aggregates every invoice in the pipeline. Recomputed fresh from the
// full invoice set on every call; nothing here is cached.

type Summary struct {
	Gross         float64 `json:"gross"`
	Net           float64 `json:"net"`
	TakeHome      float64 `json:"take_home"`
	PipelineCount int     `json:"pipeline_count"`
}

// Compute derives the income breakdown for a single invoice, applying the
// default pozotron and tax rates where the invoice leaves them unset.
func Compute(inv entities.Invoice) Breakdown {
	rate := inv.PozotronRate
	if rate == 0 {
		rate = DefaultPozotronRate
	}
	taxRate := inv.EstTaxRate
	if taxRate == 0 {
		taxRate = DefaultTaxRatePercent
	}

	b := Breakdown{Gross: inv.TotalAmount}
	b.Expenses = inv.PFHCount*rate + inv.OtherExpenses
	b.Net = b.Gross - b.Expenses
	b.Tax = b.Net * QBIFactor * (taxRate / 100)
	b.TakeHome = b.Net - b.Tax
	return b
}

// Aggregate reduces the full invoice set into pipeline-wide totals. An empty
// set returns ErrNoActivePipeline so callers can suppress the display instead
// of rendering a misleading all-zero summary.
func Aggregate(invoices []entities.Invoice) (Summary, error) {
	if len(invoices) == 0 {
		return Summary{}, ErrNoActivePipeline
	}

	var s Summary
	for _, inv := range invoices {
		b := Compute(inv)
		s.Gross += b.Gross
		s.Net += b.Net
		s.TakeHome += b.TakeHome
	}
	s.PipelineCount = len(invoices)
	return s, nil
}
