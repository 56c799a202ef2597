package ical

import (
	"fmt"
	"time"

	"clubcal"
)

// TZID is the portal's fixed zone. Every wall-clock value coming out
// of the events API is local to it.
const TZID = "America/New_York"

var portalZone = mustZone(TZID)

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type Kind int

const (
	Timed Kind = iota
	AllDay
	MultiDay
)

// allDayHours is the span, in hours, from which a same-day event stops
// being a precise block and becomes an all-day entry with a time note.
const allDayHours = 4.0

// Classification is the renderer's view of an event's timing: how the
// DTSTART/DTEND pair should be shaped and, for all-day kinds, the
// clock-time note surfaced in the description instead.
type Classification struct {
	Kind    Kind
	StartAt time.Time
	EndAt   time.Time
	// StartDate and EndDate are midnight values; for the all-day kinds
	// EndDate already carries the exclusive-end convention (the day
	// after the last included day).
	StartDate time.Time
	EndDate   time.Time
	TimeNote  string
}

// Classify decides how an event's timing is represented. Events whose
// end wall-clock precedes the start on the same date keep the literal
// (wrapped, negative) duration and therefore classify as Timed; the
// upstream data does not distinguish that case from bad input and we
// do not guess.
func Classify(start, end clubcal.EventTime) Classification {
	startAt := atZone(start)
	endAt := atZone(end)

	c := Classification{
		StartAt:   startAt,
		EndAt:     endAt,
		StartDate: midnight(startAt),
		EndDate:   midnight(endAt),
	}

	switch {
	case start.Date != end.Date:
		c.Kind = MultiDay
	case endAt.Sub(startAt).Hours() >= allDayHours:
		c.Kind = AllDay
	default:
		c.Kind = Timed
		return c
	}

	c.EndDate = c.EndDate.AddDate(0, 0, 1)
	c.TimeNote = fmt.Sprintf("%s – %s", clock12(startAt), clock12(endAt))
	return c
}

func atZone(t clubcal.EventTime) time.Time {
	layout := "2006-01-02"
	value := t.Date
	if t.Time != "" {
		layout = "2006-01-02 15:04"
		if len(t.Time) > 5 {
			layout = "2006-01-02 15:04:05"
		}
		value = t.Date + " " + t.Time
	}
	parsed, err := time.ParseInLocation(layout, value, portalZone)
	if err != nil {
		parsed, _ = time.ParseInLocation("2006-01-02", t.Date, portalZone)
	}
	return parsed
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clock12 renders a 12-hour clock time the way the portal displays
// them: no leading zero, minutes only when non-zero.
func clock12(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d %s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), suffix)
}
