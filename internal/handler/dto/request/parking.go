package request

import (
	"time"

	"facility-parking/internal/domain/parking"
	"facility-parking/internal/usecase/queries"
)

// TicketsRequest keeps the field names the kiosk form posts.
type TicketsRequest struct {
	Acc30Min int `json:"acc30min" binding:"min=0"`
	Acc1Hour int `json:"acc1hour" binding:"min=0"`
	Acc1Day  int `json:"acc1day" binding:"min=0"`
}

type QuoteRequest struct {
	EntryTime time.Time       `json:"entry_time" binding:"required"`
	ExitTime  time.Time       `json:"exit_time" binding:"required"`
	Tickets   *TicketsRequest `json:"tickets"`
}

func (r *QuoteRequest) ToInput() queries.QuoteInput {
	in := queries.QuoteInput{
		EntryTime: r.EntryTime,
		ExitTime:  r.ExitTime,
	}
	if r.Tickets != nil {
		in.Passes = &parking.PassRequest{
			ThirtyMinute: r.Tickets.Acc30Min,
			Hourly:       r.Tickets.Acc1Hour,
			Daily:        r.Tickets.Acc1Day,
		}
	}
	return in
}
