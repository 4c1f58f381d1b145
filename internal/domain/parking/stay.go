package parking

import (
	"errors"
	"fmt"
	"time"
)

var ErrEndBeforeStart = errors.New("exit time precedes entry time")

// StayInterval is the raw input of a quote. Instants are used as given; no time zone
// normalization happens here.
type StayInterval struct {
	Start time.Time
	End   time.Time
}

func (s StayInterval) Validate() error {
	if s.End.Before(s.Start) {
		return ErrEndBeforeStart
	}
	return nil
}

// Stay is a normalized interval: whole minutes plus the pricing regime chosen for it.
type Stay struct {
	Interval        StayInterval
	TotalMinutes    int
	BillableMinutes int
	BillableHours   int
	SpanDays        int
	Regime          Regime
}

// Normalize derives the billing figures of an interval and selects its regime.
// This is the only place the regime decision is made.
func (c PassCatalog) Normalize(interval StayInterval) (Stay, error) {
	if err := interval.Validate(); err != nil {
		return Stay{}, err
	}

	total := int(interval.End.Sub(interval.Start) / time.Minute)
	billable := max(0, total-c.GraceMinutes)

	stay := Stay{
		Interval:        interval,
		TotalMinutes:    total,
		BillableMinutes: billable,
		BillableHours:   ceilDiv(billable, MinutesPerHour),
		SpanDays:        ceilDiv(total, MinutesPerDay),
	}

	if total >= c.longTermThresholdMinutes() {
		stay.Regime = LongTermRegime{}
	} else {
		stay.Regime = OptimizerRegime{}
	}
	return stay, nil
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

func formatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/MinutesPerHour, totalMinutes%MinutesPerHour)
}
