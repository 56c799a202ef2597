package ical

import (
	"regexp"
	"strings"
)

// eventBlock matches one VEVENT block in unfolded text. Non-greedy, so
// malformed input never swallows a neighboring entry.
var eventBlock = regexp.MustCompile(`(?s)BEGIN:VEVENT.*?END:VEVENT`)

// FilterDocument re-extracts entry blocks from an already rendered
// calendar document and keeps only those carrying a personal status
// phrase, re-wrapped in a fresh envelope. It returns the kept count;
// zero is an informational outcome for the caller, not an error.
//
// This is the no-credentials path: when the original records are still
// at hand, Builder.BuildPersonal is the sturdier choice.
func FilterDocument(doc string) (string, int) {
	unfolded := Unfold(doc)

	kept := make([]string, 0)
	for _, block := range eventBlock.FindAllString(unfolded, -1) {
		if strings.Contains(block, "Status: "+StatusConfirmed) ||
			strings.Contains(block, "Status: "+StatusOnWaitlist) {
			kept = append(kept, block)
		}
	}

	out := strings.Builder{}
	for _, line := range envelopeHeader(PersonalCalendarName) {
		out.WriteString(Fold(line))
	}
	for _, block := range kept {
		for _, line := range strings.Split(block, "\r\n") {
			out.WriteString(Fold(line))
		}
	}
	out.WriteString(Fold("END:VCALENDAR"))
	return out.String(), len(kept)
}
