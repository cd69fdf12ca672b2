package standup

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/pkg/dateutil"
)

type Content struct {
	Text string `json:"text"`
}

type Subtitle struct {
	Subtitle string    `json:"subtitle"`
	Contents []Content `json:"contents"`
}

type Item struct {
	Title     string     `json:"title"`
	Subtitles []Subtitle `json:"subtitles"`
	Contents  []Content  `json:"contents"`
}

// Standup is one owner's notes for one calendar day. (OwnerID, Date) is unique.
type Standup struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"user_id"`
	Date      time.Time `json:"standup_date"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON writes standup_date as YYYY-MM-DD.
func (s Standup) MarshalJSON() ([]byte, error) {
	type plain Standup
	date := ""
	if !s.Date.IsZero() {
		date = dateutil.Format(s.Date)
	}
	return json.Marshal(struct {
		plain
		Date string `json:"standup_date"`
	}{plain: plain(s), Date: date})
}

func (s *Standup) UnmarshalJSON(data []byte) error {
	type plain Standup
	aux := struct {
		*plain
		Date string `json:"standup_date"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}
	date, err := dateutil.Parse(aux.Date)
	if err != nil {
		return err
	}
	s.Date = date
	return nil
}

var (
	ErrStandupNotFound = errors.New("standup not found")
	ErrNoItems         = errors.New("no item has a title and content")
)

func cleanContents(in []Content) []Content {
	out := make([]Content, 0, len(in))
	for _, c := range in {
		if strings.TrimSpace(c.Text) != "" {
			out = append(out, c)
		}
	}
	return out
}

// CleanItems prunes empty leaves. A subtitle survives with a non-blank label and at least one
// non-blank content; an item survives with a non-blank title and at least one surviving
// subtitle or direct content. Input order is preserved.
func CleanItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}

		subtitles := make([]Subtitle, 0, len(item.Subtitles))
		for _, sub := range item.Subtitles {
			contents := cleanContents(sub.Contents)
			if strings.TrimSpace(sub.Subtitle) == "" || len(contents) == 0 {
				continue
			}
			subtitles = append(subtitles, Subtitle{Subtitle: sub.Subtitle, Contents: contents})
		}
		contents := cleanContents(item.Contents)

		if len(subtitles) == 0 && len(contents) == 0 {
			continue
		}
		out = append(out, Item{Title: item.Title, Subtitles: subtitles, Contents: contents})
	}
	return out
}

//go:generate mockgen -source=standup.go -destination=../../mocks/mock_standup_repo.go -package=mocks -mock_names=Repository=MockStandupRepository
type Repository interface {
	// Upsert writes items for (OwnerID, Date), creating the row when absent, and returns the stored row.
	Upsert(ctx context.Context, s *Standup) (*Standup, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Standup, error)
	ListAll(ctx context.Context, limit int) ([]*Standup, error)
}
