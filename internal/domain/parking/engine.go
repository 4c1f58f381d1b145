package parking

import (
	"fmt"
	"time"
)

// FeeCalculator is the pricing boundary used by the use case layer.
type FeeCalculator interface {
	Quote(start, end time.Time, req *PassRequest) PricingResult
	QuoteWithPasses(start, end time.Time, req PassRequest) PricingResult
}

// Engine holds only the immutable catalog, so a single instance can serve
// any number of goroutines.
type Engine struct {
	catalog PassCatalog
}

func NewEngine(catalog PassCatalog) *Engine {
	return &Engine{catalog: catalog}
}

func NewDefaultEngine() *Engine {
	return NewEngine(DefaultCatalog())
}

func (e *Engine) Catalog() PassCatalog {
	return e.catalog
}

// Quote returns the cheapest fee for the stay. A legacy pass request is accepted
// for compatibility but has no effect: passes are always chosen automatically.
func (e *Engine) Quote(start, end time.Time, _ *PassRequest) PricingResult {
	stay, err := e.catalog.Normalize(StayInterval{Start: start, End: end})
	if err != nil {
		return orderViolationResult()
	}

	combo := stay.Regime.best(e.catalog, stay)
	return e.catalog.buildResult(stay, combo, stay.Regime.summaryLine(e.catalog, stay, combo), nil)
}

// QuoteWithPasses prices exactly the passes the caller asked for, after capping them to
// the per-stay limits. Every refused pass is listed in Receipt.Unapplied.
func (e *Engine) QuoteWithPasses(start, end time.Time, req PassRequest) PricingResult {
	stay, err := e.catalog.Normalize(StayInterval{Start: start, End: end})
	if err != nil {
		return orderViolationResult()
	}

	c := e.catalog
	unapplied := make([]string, 0, 3)

	if req.ThirtyMinute > 0 {
		unapplied = append(unapplied,
			fmt.Sprintf("%s x%d: no longer sold", PassKindThirtyMinute.Label(), req.ThirtyMinute))
	}

	daily := max(0, req.Daily)
	if dailyCap := stay.Regime.dailyCap(c, stay); daily > dailyCap {
		unapplied = append(unapplied,
			fmt.Sprintf("%s x%d: limit is %d for this stay", PassKindDaily.Label(), daily-dailyCap, dailyCap))
		daily = dailyCap
	}

	hourly := max(0, req.Hourly)
	hourlyCap := stay.Regime.hourlyCap(c)
	if hourly > hourlyCap {
		if hourlyCap == 0 {
			unapplied = append(unapplied,
				fmt.Sprintf("%s x%d: not accepted for stays of %d days or more",
					PassKindHourly.Label(), hourly, c.LongTermThresholdDays))
		} else {
			unapplied = append(unapplied,
				fmt.Sprintf("%s x%d: limit is %d per stay", PassKindHourly.Label(), hourly-hourlyCap, hourlyCap))
		}
		hourly = hourlyCap
	}

	combo := stay.Regime.evaluate(c, stay, daily, hourly)
	if unused := hourly - combo.HourlyCount; unused > 0 {
		unapplied = append(unapplied,
			fmt.Sprintf("%s x%d: no billable time left", PassKindHourly.Label(), unused))
	}

	headline := fmt.Sprintf("Requested passes: %d daily + %d hourly; %s",
		max(0, req.Daily), max(0, req.Hourly), stay.Regime.summaryLine(c, stay, combo))
	return c.buildResult(stay, combo, headline, unapplied)
}
