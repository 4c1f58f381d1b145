//go:build unit

package parking_test

import (
	"testing"
	"time"

	"facility-parking/internal/domain/parking"

	"github.com/stretchr/testify/assert"
)

func TestEngine_QuoteWithPasses(t *testing.T) {
	engine := parking.NewDefaultEngine()

	tests := []struct {
		name          string
		duration      time.Duration
		req           parking.PassRequest
		wantFee       int64
		wantDaily     int
		wantHourly    int
		wantUnapplied []string
	}{
		{
			name:          "hourly passes over the limit are refused",
			duration:      5 * time.Hour,
			req:           parking.PassRequest{Hourly: 5},
			wantFee:       6500,
			wantHourly:    2,
			wantUnapplied: []string{"Hourly pass x3: limit is 2 per stay"},
		},
		{
			name:          "daily passes capped at the span of the stay",
			duration:      30 * time.Hour,
			req:           parking.PassRequest{Daily: 4},
			wantFee:       29000,
			wantDaily:     2,
			wantUnapplied: []string{"Daily pass x2: limit is 2 for this stay"},
		},
		{
			name:          "hourly passes are not accepted on long stays",
			duration:      80 * time.Hour,
			req:           parking.PassRequest{Daily: 1, Hourly: 2},
			wantFee:       118000,
			wantDaily:     1,
			wantUnapplied: []string{"Hourly pass x2: not accepted for stays of 3 days or more"},
		},
		{
			name:          "unneeded hourly pass is returned",
			duration:      time.Hour,
			req:           parking.PassRequest{Hourly: 2},
			wantFee:       1000,
			wantHourly:    1,
			wantUnapplied: []string{"Hourly pass x1: no billable time left"},
		},
		{
			name:          "thirty-minute passes are no longer sold",
			duration:      time.Hour,
			req:           parking.PassRequest{ThirtyMinute: 2},
			wantFee:       1500,
			wantUnapplied: []string{"30-minute pass x2: no longer sold"},
		},
		{
			name:          "request within limits is applied as is",
			duration:      26 * time.Hour,
			req:           parking.PassRequest{Daily: 2, Hourly: 2},
			wantFee:       22000,
			wantDaily:     2,
			wantHourly:    2,
			wantUnapplied: []string{},
		},
		{
			name:          "negative counts are treated as none",
			duration:      2 * time.Hour,
			req:           parking.PassRequest{Daily: -1, Hourly: -3},
			wantFee:       3000,
			wantUnapplied: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := stay(tt.duration)
			actual := engine.QuoteWithPasses(start, end, tt.req)

			assert.Equal(t, tt.wantFee, actual.TotalFee)
			assert.Equal(t, tt.wantDaily, actual.Combination.DailyCount)
			assert.Equal(t, tt.wantHourly, actual.Combination.HourlyCount)
			assert.Equal(t, tt.wantUnapplied, actual.Receipt.Unapplied)
		})
	}

	t.Run("never cheaper than the automatic quote", func(t *testing.T) {
		for _, d := range []time.Duration{time.Hour, 5 * time.Hour, 26 * time.Hour, 50 * time.Hour, 80 * time.Hour} {
			start, end := stay(d)
			auto := engine.Quote(start, end, nil)
			for daily := 0; daily <= 3; daily++ {
				for hourly := 0; hourly <= 2; hourly++ {
					manual := engine.QuoteWithPasses(start, end, parking.PassRequest{Daily: daily, Hourly: hourly})
					assert.GreaterOrEqual(t, manual.TotalFee, auto.TotalFee, "duration=%s daily=%d hourly=%d", d, daily, hourly)
				}
			}
		}
	})

	t.Run("exit before entry", func(t *testing.T) {
		actual := engine.QuoteWithPasses(entry, entry.Add(-time.Hour), parking.PassRequest{Daily: 1})
		assert.True(t, actual.IsOrderViolation())
		assert.Equal(t, int64(0), actual.TotalFee)
	})
}
