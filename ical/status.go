package ical

import (
	"strings"

	"clubcal"
)

// The two viewer-specific phrases. The personal feed keys off these,
// so they appear verbatim in descriptions and in the filter.
const (
	StatusConfirmed  = "You are Confirmed"
	StatusOnWaitlist = "You are on Waitlist"
)

// ResolveStatus picks the single status string shown for an event.
// Personal state always wins over event-level availability; unknown
// upstream codes pass through verbatim so they stay visible instead of
// disappearing. An empty result means no status line at all.
func ResolveStatus(e clubcal.EventRecord) string {
	if e.Registered {
		return StatusConfirmed
	}
	if e.WaitlistSubmitted {
		return StatusOnWaitlist
	}
	switch e.AvailabilityStatus {
	case "sold_out":
		return "Sold Out"
	case "waitlist":
		return "Waitlist Only"
	case "available":
		return "Available"
	}
	if strings.Contains(strings.ToLower(e.AvailabilityStatus), "unavailable") {
		return "Unavailable"
	}
	return e.AvailabilityStatus
}

// IsPersonal reports whether the viewer has a stake in the event, a
// confirmed place or a submitted waitlist entry.
func IsPersonal(e clubcal.EventRecord) bool {
	return e.Registered || e.WaitlistSubmitted
}
