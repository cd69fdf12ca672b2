package standup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/dateutil"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const feedSize = 30

type FeedUseCase struct {
	list    *ListStandupsUseCase
	baseURL string
	logger  logger.Logger
}

func NewFeedUseCase(list *ListStandupsUseCase, baseURL string, log logger.Logger) *FeedUseCase {
	return &FeedUseCase{list: list, baseURL: strings.TrimRight(baseURL, "/"), logger: log}
}

func (uc *FeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	entries, err := uc.list.ListAll(ctx, feedSize)
	if err != nil {
		uc.logger.Error("Failed to list standups for feed", err)
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       "Team daily standups",
		Link:        &feeds.Link{Href: uc.baseURL + "/standups/all"},
		Description: "What everyone worked on.",
		Created:     time.Now(),
	}
	for _, e := range entries {
		day := dateutil.Format(e.Date)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          e.ID.String(),
			Title:       fmt.Sprintf("%s - %s", e.UserName, day),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/standups/all#%s", uc.baseURL, e.ID)},
			Author:      &feeds.Author{Name: e.UserName},
			Description: renderItems(e.Items),
			Created:     e.CreatedAt,
			Updated:     e.UpdatedAt,
		})
	}

	uc.logger.Info("Standup feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

func renderItems(items []standup.Item) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Title)
		b.WriteString("\n")
		for _, c := range item.Contents {
			b.WriteString("- " + c.Text + "\n")
		}
		for _, sub := range item.Subtitles {
			b.WriteString("  " + sub.Subtitle + "\n")
			for _, c := range sub.Contents {
				b.WriteString("  - " + c.Text + "\n")
			}
		}
	}
	return b.String()
}
