package ical

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubcal"
)

func et(date, clock string) clubcal.EventTime {
	return clubcal.EventTime{Date: date, Time: clock}
}

func TestClassifyTimed(t *testing.T) {
	c := Classify(et("2026-02-27", "18:00"), et("2026-02-27", "20:00"))
	assert.Equal(t, Timed, c.Kind)
	assert.Empty(t, c.TimeNote)
	assert.Equal(t, "20260227T180000", c.StartAt.Format(moment))
	assert.Equal(t, "20260227T200000", c.EndAt.Format(moment))
}

func TestClassifyBoundary(t *testing.T) {
	// exactly four hours flips to all-day
	c := Classify(et("2026-02-27", "10:00"), et("2026-02-27", "14:00"))
	assert.Equal(t, AllDay, c.Kind)

	// a minute short stays timed
	c = Classify(et("2026-02-27", "10:00"), et("2026-02-27", "13:59"))
	assert.Equal(t, Timed, c.Kind)
}

func TestClassifyAllDaySingle(t *testing.T) {
	c := Classify(et("2026-02-27", "10:00"), et("2026-02-27", "15:30"))
	assert.Equal(t, AllDay, c.Kind)
	assert.Equal(t, "10 AM – 3:30 PM", c.TimeNote)
	assert.Equal(t, "20260227", c.StartDate.Format(dateFmt))
	// exclusive end: the day after
	assert.Equal(t, "20260228", c.EndDate.Format(dateFmt))
}

func TestClassifyMultiDay(t *testing.T) {
	c := Classify(et("2026-02-27", "9:00"), et("2026-03-01", "12:00"))
	assert.Equal(t, MultiDay, c.Kind)
	assert.Equal(t, "9 AM – 12 PM", c.TimeNote)
	assert.Equal(t, "20260227", c.StartDate.Format(dateFmt))
	assert.Equal(t, "20260302", c.EndDate.Format(dateFmt))
}

func TestClassifyCrossMidnightStaysTimed(t *testing.T) {
	// end clock before start clock on the same date: the literal
	// difference is negative, which is below the all-day span
	c := Classify(et("2026-02-27", "22:00"), et("2026-02-27", "01:00"))
	assert.Equal(t, Timed, c.Kind)
	assert.True(t, c.EndAt.Before(c.StartAt))
}

func TestClassifyDateOnly(t *testing.T) {
	// no clock times at all: zero span, stays timed at midnight
	c := Classify(et("2026-02-27", ""), et("2026-02-27", ""))
	assert.Equal(t, Timed, c.Kind)

	// date rollover without clock times is still multi-day
	c = Classify(et("2026-02-27", ""), et("2026-02-28", ""))
	assert.Equal(t, MultiDay, c.Kind)
	assert.Equal(t, "20260301", c.EndDate.Format(dateFmt))
}

func TestClock12(t *testing.T) {
	tests := []struct {
		clock string
		want  string
	}{
		{"00:00", "12 AM"},
		{"00:05", "12:05 AM"},
		{"09:00", "9 AM"},
		{"12:00", "12 PM"},
		{"14:00", "2 PM"},
		{"15:30", "3:30 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clock12(atZone(et("2026-02-27", tt.clock))))
	}
}
