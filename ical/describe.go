package ical

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"clubcal"
)

// ComposeDescription assembles the multi-line description body in
// fixed order, omitting parts whose source data is absent. The result
// is plain text joined by newlines; escaping happens once, at field
// serialization.
func ComposeDescription(e clubcal.EventRecord, cls Classification, eventURL string) string {
	lines := make([]string, 0, 8)

	if len(e.Categories) > 0 {
		names := make([]string, len(e.Categories))
		for i, c := range e.Categories {
			names[i] = c.Name
		}
		lines = append(lines, "Category: "+strings.Join(names, ", "))
	}

	lines = append(lines, priceLine(e.Tickets))

	if len(e.Tickets) > 0 && e.Tickets[0].Remaining > 0 {
		n := e.Tickets[0].Remaining
		plural := "s"
		if n == 1 {
			plural = ""
		}
		lines = append(lines, fmt.Sprintf("Availability: %d spot%s left", n, plural))
	}

	if status := ResolveStatus(e); status != "" {
		lines = append(lines, "Status: "+status)
	}

	if cls.Kind != Timed && cls.TimeNote != "" {
		lines = append(lines, "Time: "+cls.TimeNote)
	}

	lines = append(lines, "Event URL: "+eventURL)

	if long := Sanitize(e.Description); long != "" {
		lines = append(lines, "", long)
	}

	return strings.Join(lines, "\n")
}

func priceLine(tickets []clubcal.Ticket) string {
	if len(tickets) == 0 {
		return "Price: Free / Included"
	}
	// only the first option is surfaced
	price := tickets[0].Price
	switch {
	case price == nil:
		return "Price: RSVP (see event page)"
	case price.GreaterThan(decimal.Zero):
		return fmt.Sprintf("Price: $%s per person", price.StringFixed(2))
	default:
		return "Price: Free"
	}
}
