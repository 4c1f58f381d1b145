package parking

import (
	"fmt"

	"facility-parking/internal/pkg/money"
)

type RegimeKind string

const (
	RegimeNone      RegimeKind = "none"
	RegimeLongTerm  RegimeKind = "long_term"
	RegimeOptimizer RegimeKind = "optimizer"
)

func (k RegimeKind) String() string {
	return string(k)
}

// Regime is a closed set: LongTermRegime or OptimizerRegime.
type Regime interface {
	Kind() RegimeKind

	dailyCap(c PassCatalog, s Stay) int
	hourlyCap(c PassCatalog) int
	best(c PassCatalog, s Stay) Combination
	evaluate(c PassCatalog, s Stay, daily, hourly int) Combination
	graceLine(c PassCatalog, s Stay) string
	summaryLine(c PassCatalog, s Stay, combo Combination) string
	chargeLine(c PassCatalog, combo Combination) (string, bool)
	discountMinutes(c PassCatalog, s Stay, combo Combination) int
}

// Combination is one priced choice of passes. Zero-valued fields mean "not used".
type Combination struct {
	DailyCount   int
	HourlyCount  int
	RegularHours int
	ExcessDays   int
	Fee          int64
}

// cheaperThan is strict: on equal fees the earlier candidate is kept.
func (c Combination) cheaperThan(other Combination) bool {
	return c.Fee < other.Fee
}

func cheapest(candidates []Combination) Combination {
	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.cheaperThan(best) {
			best = cand
		}
	}
	return best
}

// LongTermRegime prices stays at or beyond the long-term threshold by day-equivalents.
// No grace period and no hourly passes.
type LongTermRegime struct{}

func (LongTermRegime) Kind() RegimeKind { return RegimeLongTerm }

func (LongTermRegime) dailyCap(c PassCatalog, _ Stay) int { return c.LongTermDailyCap }

func (LongTermRegime) hourlyCap(PassCatalog) int { return 0 }

func (r LongTermRegime) best(c PassCatalog, s Stay) Combination {
	return r.evaluate(c, s, min(s.SpanDays, c.LongTermDailyCap), 0)
}

func (LongTermRegime) evaluate(c PassCatalog, s Stay, daily, _ int) Combination {
	excess := max(0, s.SpanDays-daily)
	return Combination{
		DailyCount: daily,
		ExcessDays: excess,
		Fee:        int64(daily)*c.Daily.Price + int64(excess)*24*c.RegularHourlyRate,
	}
}

func (LongTermRegime) graceLine(c PassCatalog, s Stay) string {
	return fmt.Sprintf("Grace period: not applied to stays of %d days or more; %d day(s) billed",
		c.LongTermThresholdDays, s.SpanDays)
}

func (LongTermRegime) summaryLine(_ PassCatalog, s Stay, combo Combination) string {
	return fmt.Sprintf("Long-term rate: %d daily pass(es) for %d day(s) + %d excess day(s)",
		combo.DailyCount, s.SpanDays, combo.ExcessDays)
}

func (LongTermRegime) chargeLine(c PassCatalog, combo Combination) (string, bool) {
	if combo.ExcessDays == 0 {
		return "", false
	}
	fee := int64(combo.ExcessDays) * 24 * c.RegularHourlyRate
	return fmt.Sprintf("Excess %d day(s) x 24h x %s: %s",
		combo.ExcessDays, money.Format(c.RegularHourlyRate), money.Format(fee)), true
}

func (LongTermRegime) discountMinutes(_ PassCatalog, s Stay, combo Combination) int {
	return min(s.TotalMinutes, combo.DailyCount*MinutesPerDay)
}

// OptimizerRegime searches the daily-pass count that minimizes the fee for short stays.
type OptimizerRegime struct{}

func (OptimizerRegime) Kind() RegimeKind { return RegimeOptimizer }

func (OptimizerRegime) dailyCap(_ PassCatalog, s Stay) int { return s.SpanDays }

func (OptimizerRegime) hourlyCap(c PassCatalog) int { return c.Hourly.MaxPerStay }

// best folds over d = 0..SpanDays. SpanDays is below the long-term threshold here, so the
// candidate list never exceeds LongTermThresholdDays+1 entries.
func (r OptimizerRegime) best(c PassCatalog, s Stay) Combination {
	candidates := make([]Combination, 0, s.SpanDays+1)
	for d := 0; d <= s.SpanDays; d++ {
		candidates = append(candidates, r.evaluate(c, s, d, c.Hourly.MaxPerStay))
	}
	return cheapest(candidates)
}

// evaluate prices d daily passes plus up to hourlyCap hourly passes. The grace period is
// taken once, from whatever the daily passes leave uncovered.
func (OptimizerRegime) evaluate(c PassCatalog, s Stay, daily, hourlyCap int) Combination {
	fee := int64(daily) * c.Daily.Price
	remaining := max(0, s.TotalMinutes-daily*c.Daily.CoverageMinutes)
	if remaining == 0 {
		return Combination{DailyCount: daily, Fee: fee}
	}

	remHours := ceilDiv(max(0, remaining-c.GraceMinutes), MinutesPerHour)
	hourly := min(remHours, hourlyCap)
	regular := max(0, remHours-hourly)

	return Combination{
		DailyCount:   daily,
		HourlyCount:  hourly,
		RegularHours: regular,
		Fee:          fee + int64(hourly)*c.Hourly.Price + int64(regular)*c.RegularHourlyRate,
	}
}

func (OptimizerRegime) graceLine(c PassCatalog, s Stay) string {
	return fmt.Sprintf("Grace period: first %d min free; billable %d min (%d h)",
		c.GraceMinutes, s.BillableMinutes, s.BillableHours)
}

func (OptimizerRegime) summaryLine(_ PassCatalog, _ Stay, combo Combination) string {
	return fmt.Sprintf("Combination: %d daily + %d hourly pass(es) + %d h at regular rate",
		combo.DailyCount, combo.HourlyCount, combo.RegularHours)
}

func (OptimizerRegime) chargeLine(c PassCatalog, combo Combination) (string, bool) {
	if combo.RegularHours == 0 {
		return "", false
	}
	fee := int64(combo.RegularHours) * c.RegularHourlyRate
	return fmt.Sprintf("Regular rate %dh x %s: %s",
		combo.RegularHours, money.Format(c.RegularHourlyRate), money.Format(fee)), true
}

func (OptimizerRegime) discountMinutes(c PassCatalog, s Stay, combo Combination) int {
	covered := min(s.TotalMinutes, combo.DailyCount*c.Daily.CoverageMinutes)
	remaining := s.TotalMinutes - covered
	grace := min(remaining, c.GraceMinutes)
	hourly := min(remaining-grace, combo.HourlyCount*c.Hourly.CoverageMinutes)
	return covered + grace + hourly
}
