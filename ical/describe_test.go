package ical

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"clubcal"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestComposeDescriptionFull(t *testing.T) {
	e := clubcal.EventRecord{
		Title:              "Wine Tasting",
		Description:        "<p>Wine tasting in the cellar.</p>",
		Categories:         []clubcal.Category{{Name: "Social"}, {Name: "Dinner"}},
		Tickets:            []clubcal.Ticket{{Price: dec("25.5"), Remaining: 12}},
		AvailabilityStatus: "available",
	}
	cls := Classify(et("2026-02-27", "18:00"), et("2026-02-27", "20:00"))

	got := ComposeDescription(e, cls, "https://members.example.org/events/42")
	want := strings.Join([]string{
		"Category: Social, Dinner",
		"Price: $25.50 per person",
		"Availability: 12 spots left",
		"Status: Available",
		"Event URL: https://members.example.org/events/42",
		"",
		"Wine tasting in the cellar.",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestComposeDescriptionTimeNote(t *testing.T) {
	e := clubcal.EventRecord{}
	cls := Classify(et("2026-02-27", "10:00"), et("2026-02-27", "15:00"))

	got := ComposeDescription(e, cls, "https://x/events/1")
	assert.Contains(t, got, "Time: 10 AM – 3 PM")
}

func TestComposeDescriptionOmissions(t *testing.T) {
	got := ComposeDescription(clubcal.EventRecord{}, Classification{Kind: Timed}, "https://x/events/1")
	want := strings.Join([]string{
		"Price: Free / Included",
		"Event URL: https://x/events/1",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPriceLine(t *testing.T) {
	tests := []struct {
		name    string
		tickets []clubcal.Ticket
		want    string
	}{
		{name: "no tickets", tickets: nil, want: "Price: Free / Included"},
		{name: "priced", tickets: []clubcal.Ticket{{Price: dec("25.5")}}, want: "Price: $25.50 per person"},
		{name: "zero price", tickets: []clubcal.Ticket{{Price: dec("0")}}, want: "Price: Free"},
		{name: "no figure", tickets: []clubcal.Ticket{{Price: nil}}, want: "Price: RSVP (see event page)"},
		{
			name:    "only the first option counts",
			tickets: []clubcal.Ticket{{Price: dec("10")}, {Price: dec("99")}},
			want:    "Price: $10.00 per person",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, priceLine(tt.tickets))
		})
	}
}

func TestAvailabilityPluralization(t *testing.T) {
	one := clubcal.EventRecord{Tickets: []clubcal.Ticket{{Price: dec("5"), Remaining: 1}}}
	got := ComposeDescription(one, Classification{Kind: Timed}, "https://x/events/1")
	assert.Contains(t, got, "Availability: 1 spot left")

	many := clubcal.EventRecord{Tickets: []clubcal.Ticket{{Price: dec("5"), Remaining: 3}}}
	got = ComposeDescription(many, Classification{Kind: Timed}, "https://x/events/1")
	assert.Contains(t, got, "Availability: 3 spots left")

	none := clubcal.EventRecord{Tickets: []clubcal.Ticket{{Price: dec("5"), Remaining: 0}}}
	got = ComposeDescription(none, Classification{Kind: Timed}, "https://x/events/1")
	assert.NotContains(t, got, "Availability:")
}
