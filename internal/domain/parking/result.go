package parking

import (
	"fmt"

	"facility-parking/internal/pkg/money"
)

const orderViolationMessage = "Exit time is earlier than entry time."

type AppliedPass struct {
	Kind     PassKind
	Count    int
	Subtotal int64
}

type Receipt struct {
	Applied   []AppliedPass
	Unapplied []string
	FinalFee  int64
}

// PricingResult is built fresh for every quote and never modified afterwards.
type PricingResult struct {
	TotalFee               int64
	TotalDurationMinutes   int
	TotalDuration          string
	AppliedDiscountMinutes int
	Regime                 RegimeKind
	Combination            Combination
	Breakdown              []string
	Receipt                Receipt
}

func (r PricingResult) IsOrderViolation() bool {
	return r.Regime == RegimeNone
}

// PassRequest is the legacy ticket form: how many passes of each kind the caller wanted.
type PassRequest struct {
	ThirtyMinute int
	Hourly       int
	Daily        int
}

func (r PassRequest) IsEmpty() bool {
	return r.ThirtyMinute <= 0 && r.Hourly <= 0 && r.Daily <= 0
}

func orderViolationResult() PricingResult {
	return PricingResult{
		TotalDuration: formatDuration(0),
		Regime:        RegimeNone,
		Breakdown:     []string{orderViolationMessage},
		Receipt: Receipt{
			Applied:   []AppliedPass{},
			Unapplied: []string{},
		},
	}
}

// buildResult renders a priced stay in a fixed order: duration, grace, summary,
// one line per applied pass kind, any regular-rate charge, total.
func (c PassCatalog) buildResult(s Stay, combo Combination, headline string, unapplied []string) PricingResult {
	applied := c.appliedPasses(combo)

	breakdown := make([]string, 0, len(applied)+5)
	breakdown = append(breakdown,
		fmt.Sprintf("Total parking time: %s (%d min)", formatDuration(s.TotalMinutes), s.TotalMinutes),
		s.Regime.graceLine(c, s),
		headline,
	)
	for _, p := range applied {
		breakdown = append(breakdown, fmt.Sprintf("%s x%d: %s", p.Kind.Label(), p.Count, money.Format(p.Subtotal)))
	}
	if line, ok := s.Regime.chargeLine(c, combo); ok {
		breakdown = append(breakdown, line)
	}
	breakdown = append(breakdown, "Total fee: "+money.Format(combo.Fee))

	if unapplied == nil {
		unapplied = []string{}
	}

	return PricingResult{
		TotalFee:               combo.Fee,
		TotalDurationMinutes:   s.TotalMinutes,
		TotalDuration:          formatDuration(s.TotalMinutes),
		AppliedDiscountMinutes: s.Regime.discountMinutes(c, s, combo),
		Regime:                 s.Regime.Kind(),
		Combination:            combo,
		Breakdown:              breakdown,
		Receipt: Receipt{
			Applied:   applied,
			Unapplied: unapplied,
			FinalFee:  combo.Fee,
		},
	}
}

func (c PassCatalog) appliedPasses(combo Combination) []AppliedPass {
	applied := make([]AppliedPass, 0, 2)
	if combo.DailyCount > 0 {
		applied = append(applied, AppliedPass{
			Kind:     PassKindDaily,
			Count:    combo.DailyCount,
			Subtotal: int64(combo.DailyCount) * c.Daily.Price,
		})
	}
	if combo.HourlyCount > 0 {
		applied = append(applied, AppliedPass{
			Kind:     PassKindHourly,
			Count:    combo.HourlyCount,
			Subtotal: int64(combo.HourlyCount) * c.Hourly.Price,
		})
	}
	return applied
}
