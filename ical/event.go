package ical

import (
	"strings"
	"time"

	"clubcal"
)

const (
	dateFmt  = "20060102"
	moment   = "20060102T150405"
	stampFmt = "20060102T150405Z"

	placeholderTitle = "Club Event"
)

// renderEvent turns one record into the logical lines of a VEVENT
// block. Records without a usable start date yield nil: they are
// dropped from the feed, not failed, so one bad upstream record never
// sinks the whole build.
func (b Builder) renderEvent(e clubcal.EventRecord, stamp time.Time) []string {
	start, end, ok := e.StartEnd()
	if !ok {
		return nil
	}
	cls := Classify(start, end)

	eventURL := b.EventURL(e.ID)
	description := ComposeDescription(e, cls, eventURL)

	title := e.Title
	if strings.TrimSpace(title) == "" {
		title = placeholderTitle
	}

	lines := make([]string, 0, 12)
	lines = append(lines,
		"BEGIN:VEVENT",
		"UID:"+e.ID+"@"+b.uidDomain(),
		"DTSTAMP:"+stamp.UTC().Format(stampFmt),
	)
	if cls.Kind == Timed {
		lines = append(lines,
			"DTSTART;TZID="+TZID+":"+cls.StartAt.Format(moment),
			"DTEND;TZID="+TZID+":"+cls.EndAt.Format(moment),
		)
	} else {
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+cls.StartDate.Format(dateFmt),
			"DTEND;VALUE=DATE:"+cls.EndDate.Format(dateFmt),
		)
	}
	lines = append(lines, "SUMMARY:"+Escape(title))
	if venue := strings.TrimSpace(e.Venue); venue != "" {
		lines = append(lines, "LOCATION:"+Escape(venue))
	}
	lines = append(lines, "DESCRIPTION:"+Escape(description))
	// URLs contain no reserved characters by construction
	lines = append(lines, "URL:"+eventURL)
	if len(e.Categories) > 0 {
		names := make([]string, len(e.Categories))
		for i, c := range e.Categories {
			names[i] = Escape(c.Name)
		}
		lines = append(lines, "CATEGORIES:"+strings.Join(names, ","))
	}
	lines = append(lines, "END:VEVENT")
	return lines
}
