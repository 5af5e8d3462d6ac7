package report

import "context"

// Service defines the time-accounting views built on top of raw punches:
// the per-day DTR and the period rollup.
type Service interface {
	// DTR computes daily metrics for every day in the requested range,
	// inclusive on both ends.
	DTR(ctx context.Context, req RangeRequest) (DTRResponse, error)

	// Summary rolls the same range up into payroll-facing totals.
	Summary(ctx context.Context, req RangeRequest) (SummaryResponse, error)
}
