package clubcal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EventTime is a portal-local timestamp split the way the events API
// delivers it: a calendar date plus an optional wall-clock time, both
// interpreted in the portal's fixed zone.
type EventTime struct {
	Date string // 2006-01-02
	Time string // 15:04 or 15:04:05, empty for date-only values
}

func (t EventTime) IsZero() bool {
	return t.Date == ""
}

type Category struct {
	Name string
}

// Ticket is one purchase option for an event. A nil Price means the
// portal lists the option without a figure ("inquire").
type Ticket struct {
	Price     *decimal.Decimal
	Remaining int
}

// EventRecord is a single event as fetched from the member portal,
// normalized from the wire payloads. The rendering core treats it as
// read-only.
type EventRecord struct {
	ID                 string
	Title              string
	Description        string
	Venue              string
	Start              *EventTime
	End                *EventTime
	Categories         []Category
	Tickets            []Ticket
	AvailabilityStatus string
	// Registered is set when the viewer holds a confirmed place.
	Registered bool
	// WaitlistSubmitted is set when the viewer personally joined the
	// waitlist. Distinct from the event merely having a waitlist: the
	// upstream contract guarantees this flag, we never re-derive it.
	WaitlistSubmitted bool
}

// StartEnd returns the record's start and the end it defaults to when
// the portal omits one.
func (e EventRecord) StartEnd() (EventTime, EventTime, bool) {
	if e.Start == nil || e.Start.IsZero() {
		return EventTime{}, EventTime{}, false
	}
	end := *e.Start
	if e.End != nil && !e.End.IsZero() {
		end = *e.End
	}
	return *e.Start, end, true
}

func (e EventRecord) String() string {
	if len(e.Title) == 0 {
		return fmt.Sprintf("<%s>", e.ID)
	}
	return fmt.Sprintf("<%s %s>", e.ID, e.Title)
}
