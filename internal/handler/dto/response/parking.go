package response

import "facility-parking/internal/domain/parking"

type CombinationResponse struct {
	DailyCount   int `json:"daily_count"`
	HourlyCount  int `json:"hourly_count"`
	RegularHours int `json:"regular_hours"`
	ExcessDays   int `json:"excess_days"`
}

type AppliedPassResponse struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Subtotal int64  `json:"subtotal"`
}

type QuoteReceiptResponse struct {
	Applied   []AppliedPassResponse `json:"applied"`
	Unapplied []string              `json:"unapplied"`
	FinalFee  int64                 `json:"final_fee"`
}

type QuoteResponse struct {
	TotalFee               int64                `json:"total_fee"`
	TotalDurationMinutes   int                  `json:"total_duration_minutes"`
	TotalDuration          string               `json:"total_duration"`
	AppliedDiscountMinutes int                  `json:"applied_discount_minutes"`
	Regime                 string               `json:"regime"`
	Combination            CombinationResponse  `json:"combination"`
	Breakdown              []string             `json:"breakdown"`
	Receipt                QuoteReceiptResponse `json:"receipt"`
}

func FromPricingResult(r parking.PricingResult) *QuoteResponse {
	applied := make([]AppliedPassResponse, len(r.Receipt.Applied))
	for i, p := range r.Receipt.Applied {
		applied[i] = AppliedPassResponse{
			Kind:     p.Kind.String(),
			Label:    p.Kind.Label(),
			Count:    p.Count,
			Subtotal: p.Subtotal,
		}
	}

	unapplied := r.Receipt.Unapplied
	if unapplied == nil {
		unapplied = []string{}
	}

	return &QuoteResponse{
		TotalFee:               r.TotalFee,
		TotalDurationMinutes:   r.TotalDurationMinutes,
		TotalDuration:          r.TotalDuration,
		AppliedDiscountMinutes: r.AppliedDiscountMinutes,
		Regime:                 r.Regime.String(),
		Combination: CombinationResponse{
			DailyCount:   r.Combination.DailyCount,
			HourlyCount:  r.Combination.HourlyCount,
			RegularHours: r.Combination.RegularHours,
			ExcessDays:   r.Combination.ExcessDays,
		},
		Breakdown: r.Breakdown,
		Receipt: QuoteReceiptResponse{
			Applied:   applied,
			Unapplied: unapplied,
			FinalFee:  r.Receipt.FinalFee,
		},
	}
}
