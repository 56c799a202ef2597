package ical

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubcal"
)

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name string
		e    clubcal.EventRecord
		want string
	}{
		{
			name: "registered wins over sold out",
			e:    clubcal.EventRecord{Registered: true, AvailabilityStatus: "sold_out"},
			want: "You are Confirmed",
		},
		{
			name: "registered wins over waitlist submission",
			e:    clubcal.EventRecord{Registered: true, WaitlistSubmitted: true},
			want: "You are Confirmed",
		},
		{
			name: "waitlist submission wins over availability",
			e:    clubcal.EventRecord{WaitlistSubmitted: true, AvailabilityStatus: "available"},
			want: "You are on Waitlist",
		},
		{
			name: "sold out",
			e:    clubcal.EventRecord{AvailabilityStatus: "sold_out"},
			want: "Sold Out",
		},
		{
			name: "waitlist only",
			e:    clubcal.EventRecord{AvailabilityStatus: "waitlist"},
			want: "Waitlist Only",
		},
		{
			name: "available",
			e:    clubcal.EventRecord{AvailabilityStatus: "available"},
			want: "Available",
		},
		{
			name: "unavailable substring, any case",
			e:    clubcal.EventRecord{AvailabilityStatus: "Currently UNAVAILABLE online"},
			want: "Unavailable",
		},
		{
			name: "unknown code passes through",
			e:    clubcal.EventRecord{AvailabilityStatus: "members_only"},
			want: "members_only",
		},
		{
			name: "nothing resolvable",
			e:    clubcal.EventRecord{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(tt.e))
		})
	}
}

func TestIsPersonal(t *testing.T) {
	assert.True(t, IsPersonal(clubcal.EventRecord{Registered: true}))
	assert.True(t, IsPersonal(clubcal.EventRecord{WaitlistSubmitted: true}))
	assert.False(t, IsPersonal(clubcal.EventRecord{AvailabilityStatus: "waitlist"}))
}
