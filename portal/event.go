package portal

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"clubcal"
)

// Wire shapes for the portal's internal events API. Everything is
// mapped onto clubcal.EventRecord at the package boundary so the rest
// of the program never sees upstream field names.

type listResponse struct {
	Events     []eventPayload `json:"events"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

type detailResponse struct {
	Event eventPayload `json:"event"`
}

// flexID absorbs the API's inconsistency about numeric vs string ids.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	s := ""
	if err := json.Unmarshal(b, &s); err == nil {
		*id = flexID(s)
		return nil
	}
	n := json.Number("")
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

type eventPayload struct {
	ID          flexID            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Venue       *venuePayload     `json:"venue"`
	StartDate   string            `json:"start_date"`
	StartTime   string            `json:"start_time"`
	EndDate     string            `json:"end_date"`
	EndTime     string            `json:"end_time"`
	Categories  []categoryPayload `json:"categories"`
	Tickets     []ticketPayload   `json:"tickets"`
	Status      string            `json:"availability_status"`
	Registered  bool              `json:"registered"`
	// only present on the detail payload, the listing omits it
	WaitlistSubmitted bool `json:"waitlist_submitted"`
}

type venuePayload struct {
	Name string `json:"name"`
}

type categoryPayload struct {
	Name string `json:"name"`
}

type ticketPayload struct {
	Price     *decimal.Decimal `json:"price"`
	Remaining int              `json:"quantity_remaining"`
}

func (p eventPayload) record() clubcal.EventRecord {
	e := clubcal.EventRecord{
		ID:                 string(p.ID),
		Title:              p.Title,
		Description:        p.Description,
		AvailabilityStatus: p.Status,
		Registered:         p.Registered,
		WaitlistSubmitted:  p.WaitlistSubmitted,
	}
	if p.Venue != nil {
		e.Venue = p.Venue.Name
	}
	if p.StartDate != "" {
		e.Start = &clubcal.EventTime{Date: p.StartDate, Time: p.StartTime}
	}
	if p.EndDate != "" {
		e.End = &clubcal.EventTime{Date: p.EndDate, Time: p.EndTime}
	}
	for _, c := range p.Categories {
		e.Categories = append(e.Categories, clubcal.Category{Name: c.Name})
	}
	for _, t := range p.Tickets {
		e.Tickets = append(e.Tickets, clubcal.Ticket{Price: t.Price, Remaining: t.Remaining})
	}
	return e
}
