package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// standupRow feeds fixed column values to scanStandup.
type standupRow struct {
	items []byte
}

func (r standupRow) Scan(dest ...any) error {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	*dest[0].(*uuid.UUID) = uuid.New()
	*dest[1].(*uuid.UUID) = uuid.New()
	*dest[2].(*time.Time) = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	*dest[3].(*[]byte) = r.items
	*dest[4].(*time.Time) = now
	*dest[5].(*time.Time) = now
	return nil
}

func TestScanStandup_DecodesItems(t *testing.T) {
	s, err := scanStandup(standupRow{items: []byte(`[{"title":"Today","contents":[{"text":"ship"}]}]`)})
	require.NoError(t, err)
	require.Len(t, s.Items, 1)
	assert.Equal(t, "ship", s.Items[0].Contents[0].Text)
}

func TestScanStandup_CorruptItemsIsAnError(t *testing.T) {
	_, err := scanStandup(standupRow{items: []byte(`{"title":`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode standup items")
}
