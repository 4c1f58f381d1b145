package money

import "github.com/dustin/go-humanize"

// Format renders an amount in currency units with thousands separators, e.g. 22,000.
func Format(units int64) string {
	return humanize.Comma(units)
}
