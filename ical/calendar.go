package ical

import (
	"net/url"
	"strings"
	"time"

	"clubcal"
)

const (
	ProdID = "-//clubcal//Club Events//EN"

	DefaultCalendarName  = "Club Events"
	PersonalCalendarName = "My Club Events"

	calendarDescription = "Events from the members portal"
)

// Builder renders event records into a VCALENDAR document. It is a
// pure transformation: the same records and the same clock always
// produce byte-identical output.
type Builder struct {
	// BaseURL is the portal root; event page URLs and the UID domain
	// derive from it.
	BaseURL string
	// Name overrides the calendar display name.
	Name string
	// Now is the generation clock, overridable for deterministic
	// output. Nil means time.Now.
	Now func() time.Time
}

// Build renders every record with a usable start date, in input order,
// wrapped in the calendar envelope.
func (b Builder) Build(records []clubcal.EventRecord) string {
	name := b.Name
	if name == "" {
		name = DefaultCalendarName
	}
	return b.build(name, records)
}

// BuildPersonal renders only the records the viewer is confirmed or
// waitlisted on. This is the filter-before-render path; FilterDocument
// covers the case where only rendered text is available.
func (b Builder) BuildPersonal(records []clubcal.EventRecord) (string, int) {
	personal := PersonalRecords(records)
	return b.build(PersonalCalendarName, personal), len(personal)
}

// PersonalRecords returns the subset of records carrying personal
// status, preserving order.
func PersonalRecords(records []clubcal.EventRecord) []clubcal.EventRecord {
	kept := make([]clubcal.EventRecord, 0, len(records))
	for _, e := range records {
		if IsPersonal(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

func (b Builder) build(name string, records []clubcal.EventRecord) string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	// one stamp for the whole document
	stamp := now()

	doc := strings.Builder{}
	for _, line := range envelopeHeader(name) {
		doc.WriteString(Fold(line))
	}
	for _, e := range records {
		for _, line := range b.renderEvent(e, stamp) {
			doc.WriteString(Fold(line))
		}
	}
	doc.WriteString(Fold("END:VCALENDAR"))
	return doc.String()
}

func envelopeHeader(name string) []string {
	return []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + Escape(name),
		"X-WR-TIMEZONE:" + TZID,
		"X-WR-CALDESC:" + Escape(calendarDescription),
	}
}

// EventURL is the canonical page for an event on the portal.
func (b Builder) EventURL(id string) string {
	return strings.TrimRight(b.BaseURL, "/") + "/events/" + id
}

func (b Builder) uidDomain() string {
	if u, err := url.Parse(b.BaseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return "clubcal.local"
}
