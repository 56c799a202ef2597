package portal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPayloadMapping(t *testing.T) {
	raw := `{
		"event": {
			"id": 42,
			"title": "Wine Tasting",
			"description": "<p>In the cellar.</p>",
			"venue": {"name": "The Cellar"},
			"start_date": "2026-02-27",
			"start_time": "18:00",
			"end_date": "2026-02-27",
			"end_time": "20:00",
			"categories": [{"name": "Social"}, {"name": "Dinner"}],
			"tickets": [{"price": "25.50", "quantity_remaining": 12}],
			"availability_status": "available",
			"registered": false,
			"waitlist_submitted": true
		}
	}`

	detail := detailResponse{}
	require.NoError(t, json.Unmarshal([]byte(raw), &detail))

	e := detail.Event.record()
	assert.Equal(t, "42", e.ID)
	assert.Equal(t, "Wine Tasting", e.Title)
	assert.Equal(t, "The Cellar", e.Venue)
	require.NotNil(t, e.Start)
	assert.Equal(t, "2026-02-27", e.Start.Date)
	assert.Equal(t, "18:00", e.Start.Time)
	require.NotNil(t, e.End)
	assert.Equal(t, "20:00", e.End.Time)
	require.Len(t, e.Categories, 2)
	assert.Equal(t, "Social", e.Categories[0].Name)
	require.Len(t, e.Tickets, 1)
	require.NotNil(t, e.Tickets[0].Price)
	assert.Equal(t, "25.50", e.Tickets[0].Price.StringFixed(2))
	assert.Equal(t, 12, e.Tickets[0].Remaining)
	assert.Equal(t, "available", e.AvailabilityStatus)
	assert.False(t, e.Registered)
	assert.True(t, e.WaitlistSubmitted)
}

func TestEventPayloadSparse(t *testing.T) {
	raw := `{"event": {"id": "evt-9"}}`
	detail := detailResponse{}
	require.NoError(t, json.Unmarshal([]byte(raw), &detail))

	e := detail.Event.record()
	assert.Equal(t, "evt-9", e.ID)
	assert.Nil(t, e.Start)
	assert.Nil(t, e.End)
	assert.Empty(t, e.Venue)
	assert.Empty(t, e.Tickets)
}

func TestEventPayloadDateOnly(t *testing.T) {
	raw := `{"event": {"id": 3, "start_date": "2026-02-27"}}`
	detail := detailResponse{}
	require.NoError(t, json.Unmarshal([]byte(raw), &detail))

	e := detail.Event.record()
	require.NotNil(t, e.Start)
	assert.Equal(t, "2026-02-27", e.Start.Date)
	assert.Empty(t, e.Start.Time)
	// missing end defaults to start downstream
	assert.Nil(t, e.End)
}
