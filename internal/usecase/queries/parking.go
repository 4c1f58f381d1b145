package queries

import (
	"context"
	"log/slog"
	"time"

	"facility-parking/internal/domain/parking"
)

//go:generate mockgen -source=parking.go -destination=../../../tests/mock/queries/parking_mock.go -package=queriesmock

type QuoteInput struct {
	EntryTime time.Time
	ExitTime  time.Time
	Passes    *parking.PassRequest
}

// ParkingQueries exposes the pricing engine to handlers. Quotes never fail:
// an exit before entry comes back as a zero-fee result.
type ParkingQueries interface {
	Quote(ctx context.Context, in QuoteInput) parking.PricingResult
	QuoteWithPasses(ctx context.Context, in QuoteInput) parking.PricingResult
}

type parkingQueriesImpl struct {
	calculator parking.FeeCalculator
	logger     *slog.Logger
}

func NewParkingQueries(calculator parking.FeeCalculator, logger *slog.Logger) ParkingQueries {
	return &parkingQueriesImpl{calculator: calculator, logger: logger}
}

func (q *parkingQueriesImpl) Quote(ctx context.Context, in QuoteInput) parking.PricingResult {
	result := q.calculator.Quote(in.EntryTime, in.ExitTime, in.Passes)
	q.log(ctx, "auto", result)
	return result
}

func (q *parkingQueriesImpl) QuoteWithPasses(ctx context.Context, in QuoteInput) parking.PricingResult {
	var req parking.PassRequest
	if in.Passes != nil {
		req = *in.Passes
	}
	result := q.calculator.QuoteWithPasses(in.EntryTime, in.ExitTime, req)
	q.log(ctx, "manual", result)
	return result
}

func (q *parkingQueriesImpl) log(ctx context.Context, mode string, result parking.PricingResult) {
	if result.IsOrderViolation() {
		q.logger.WarnContext(ctx, "quote requested with exit before entry", "mode", mode)
		return
	}
	q.logger.DebugContext(ctx, "quote computed",
		"mode", mode,
		"regime", result.Regime.String(),
		"minutes", result.TotalDurationMinutes,
		"fee", result.TotalFee,
		"unapplied", len(result.Receipt.Unapplied),
	)
}
