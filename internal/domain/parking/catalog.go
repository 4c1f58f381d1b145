package parking

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

type PassKind string

const (
	PassKindDaily  PassKind = "daily"
	PassKindHourly PassKind = "hourly"
	// Legacy kind from the old ticket form. No longer sold; requests for it are refused.
	PassKindThirtyMinute PassKind = "thirty_minute"
)

func (k PassKind) String() string {
	return string(k)
}

func (k PassKind) Label() string {
	switch k {
	case PassKindDaily:
		return "Daily pass"
	case PassKindHourly:
		return "Hourly pass"
	case PassKindThirtyMinute:
		return "30-minute pass"
	default:
		return string(k)
	}
}

type Pass struct {
	Kind            PassKind
	Price           int64
	CoverageMinutes int
	MaxPerStay      int
}

// PassCatalog is the fixed tariff. It is passed by value and never mutated.
type PassCatalog struct {
	Daily  Pass
	Hourly Pass

	RegularHourlyRate int64
	GraceMinutes      int

	LongTermThresholdDays int
	LongTermDailyCap      int
}

// DefaultCatalog returns the tariff posted at the facility.
// A daily pass is sold per day of stay but absorbs 12 hours of parked time.
func DefaultCatalog() PassCatalog {
	return PassCatalog{
		Daily: Pass{
			Kind:            PassKindDaily,
			Price:           10000,
			CoverageMinutes: 12 * MinutesPerHour,
			MaxPerStay:      3,
		},
		Hourly: Pass{
			Kind:            PassKindHourly,
			Price:           1000,
			CoverageMinutes: MinutesPerHour,
			MaxPerStay:      2,
		},
		RegularHourlyRate:     1500,
		GraceMinutes:          30,
		LongTermThresholdDays: 3,
		LongTermDailyCap:      3,
	}
}

// WithDailyCoverage returns a copy of the catalog whose daily pass covers the given minutes.
func (c PassCatalog) WithDailyCoverage(minutes int) PassCatalog {
	c.Daily.CoverageMinutes = minutes
	return c
}

func (c PassCatalog) longTermThresholdMinutes() int {
	return c.LongTermThresholdDays * MinutesPerDay
}
