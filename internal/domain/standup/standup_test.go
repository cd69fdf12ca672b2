package standup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanItems_DropsTitleOnlyItems(t *testing.T) {
	items := []Item{
		{
			Title:     "Yesterday",
			Subtitles: []Subtitle{{Subtitle: "", Contents: []Content{{Text: "orphan"}}}},
			Contents:  []Content{{Text: "  "}},
		},
	}
	assert.Empty(t, CleanItems(items))
}

func TestCleanItems_KeepsItemWithDirectContent(t *testing.T) {
	items := []Item{
		{Title: "Today", Contents: []Content{{Text: ""}, {Text: "ship the upsert"}}},
	}
	got := CleanItems(items)

	assert.Equal(t, []Item{
		{Title: "Today", Subtitles: []Subtitle{}, Contents: []Content{{Text: "ship the upsert"}}},
	}, got)
}

func TestCleanItems_PrunesNestedLeaves(t *testing.T) {
	items := []Item{
		{Title: "  "},
		{
			Title: "Blockers",
			Subtitles: []Subtitle{
				{Subtitle: "CI", Contents: []Content{{Text: "flaky"}, {Text: ""}}},
				{Subtitle: "Review", Contents: []Content{{Text: " "}}},
			},
		},
	}
	got := CleanItems(items)

	assert.Len(t, got, 1)
	assert.Equal(t, "Blockers", got[0].Title)
	assert.Equal(t, []Subtitle{{Subtitle: "CI", Contents: []Content{{Text: "flaky"}}}}, got[0].Subtitles)
	assert.Empty(t, got[0].Contents)
}

func TestStandupJSON_DateOnly(t *testing.T) {
	s := Standup{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Items: []Item{{Title: "Today"}}}

	raw, err := json.Marshal(&s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"standup_date":"2024-03-04"`)

	var back Standup
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, s.Date.Equal(back.Date))
	assert.Equal(t, "Today", back.Items[0].Title)
}
