package standup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/internal/mocks"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

func waitClosed(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event publish")
	}
}

func TestUpsertStandupUseCase_Execute(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	ownerID := uuid.New()

	testCases := []struct {
		name      string
		itemsJSON string
		mock      func(ctrl *gomock.Controller) (standup.Repository, service.PageCache, service.EventPublisher, <-chan struct{})
		wantMsg   string
		wantItems int
	}{
		{
			name:      "stores cleaned items",
			itemsJSON: `[{"title":"Yesterday","contents":[{"text":"shipped"},{"text":" "}]},{"title":"Empty","contents":[]}]`,
			mock: func(ctrl *gomock.Controller) (standup.Repository, service.PageCache, service.EventPublisher, <-chan struct{}) {
				repo := mocks.NewMockStandupRepository(ctrl)
				cache := mocks.NewMockPageCache(ctrl)
				pub := mocks.NewMockEventPublisher(ctrl)
				done := make(chan struct{})
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *standup.Standup) (*standup.Standup, error) {
					return s, nil
				})
				cache.EXPECT().Revalidate(gomock.Any(), service.PageStandups, service.PageStandupsAll).Return(nil)
				pub.EXPECT().PublishStandupEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, evt service.ChangeEvent) error {
					defer close(done)
					if evt.EventType != service.EventUpserted {
						return errors.New("unexpected event type")
					}
					return nil
				})
				return repo, cache, pub, done
			},
			wantItems: 1,
		},
		{
			name:      "malformed json",
			itemsJSON: `{"title":`,
			mock: func(ctrl *gomock.Controller) (standup.Repository, service.PageCache, service.EventPublisher, <-chan struct{}) {
				return mocks.NewMockStandupRepository(ctrl), mocks.NewMockPageCache(ctrl), mocks.NewMockEventPublisher(ctrl), nil
			},
			wantMsg: MsgInvalidItems,
		},
		{
			name:      "nothing left after cleaning",
			itemsJSON: `[{"title":"Only a title"},{"title":"","contents":[{"text":"orphan"}]}]`,
			mock: func(ctrl *gomock.Controller) (standup.Repository, service.PageCache, service.EventPublisher, <-chan struct{}) {
				return mocks.NewMockStandupRepository(ctrl), mocks.NewMockPageCache(ctrl), mocks.NewMockEventPublisher(ctrl), nil
			},
			wantMsg: MsgNoItems,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo, cache, pub, done := tc.mock(ctrl)

			uc := NewUpsertStandupUseCase(repo, cache, pub, logger.NewNopLogger())
			got, err := uc.Execute(context.Background(), UpsertStandupInput{OwnerID: ownerID, Date: day, ItemsJSON: tc.itemsJSON})
			if tc.wantMsg != "" {
				require.ErrorIs(t, err, apperror.ErrInvalidInput)
				assert.Equal(t, tc.wantMsg, apperror.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got.Items, tc.wantItems)
			assert.Equal(t, []standup.Content{{Text: "shipped"}}, got.Items[0].Contents)
			waitClosed(t, done)
		})
	}
}

func TestDeleteStandupUseCase_StoreErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStandupRepository(ctrl)
	id, ownerID := uuid.New(), uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id, ownerID).Return(apperror.NewStore(standup.ErrStandupNotFound))

	uc := NewDeleteStandupUseCase(repo, mocks.NewMockPageCache(ctrl), mocks.NewMockEventPublisher(ctrl), logger.NewNopLogger())
	err := uc.Execute(context.Background(), id, ownerID)

	assert.ErrorIs(t, err, apperror.ErrStore)
	assert.Equal(t, "standup not found", apperror.Message(err))
}

func TestListStandupsUseCase_ListAllAttachesNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStandupRepository(ctrl)
	profiles := mocks.NewMockProfileRepository(ctrl)
	cache := mocks.NewMockPageCache(ctrl)

	kim, ghost := uuid.New(), uuid.New()
	repo.EXPECT().ListAll(gomock.Any(), 0).Return([]*standup.Standup{
		{ID: uuid.New(), OwnerID: kim},
		{ID: uuid.New(), OwnerID: ghost},
	}, nil)
	profiles.EXPECT().ListAll(gomock.Any()).Return([]*profile.Profile{{ID: kim, Name: "Kim"}}, nil)
	cache.EXPECT().Get(gomock.Any(), service.PageStandupsAll, "limit-0").Return(nil, false, nil)
	cache.EXPECT().Set(gomock.Any(), service.PageStandupsAll, "limit-0", gomock.Any(), time.Minute).Return(nil)

	uc := NewListStandupsUseCase(repo, profiles, cache, time.Minute, logger.NewNopLogger())
	entries, err := uc.ListAll(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Kim", entries[0].UserName)
	assert.Equal(t, profile.UnknownName, entries[1].UserName)
}

func TestFeedUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStandupRepository(ctrl)
	profiles := mocks.NewMockProfileRepository(ctrl)
	cache := mocks.NewMockPageCache(ctrl)

	kim := uuid.New()
	repo.EXPECT().ListAll(gomock.Any(), feedSize).Return([]*standup.Standup{{
		ID:      uuid.New(),
		OwnerID: kim,
		Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Items: []standup.Item{{
			Title:     "Today",
			Subtitles: []standup.Subtitle{{Subtitle: "API", Contents: []standup.Content{{Text: "review"}}}},
		}},
	}}, nil)
	profiles.EXPECT().ListAll(gomock.Any()).Return([]*profile.Profile{{ID: kim, Name: "Kim"}}, nil)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	list := NewListStandupsUseCase(repo, profiles, cache, time.Minute, logger.NewNopLogger())
	feed, err := NewFeedUseCase(list, "http://localhost:8080/", logger.NewNopLogger()).Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Kim - 2024-03-04", feed.Items[0].Title)
	assert.True(t, strings.HasPrefix(feed.Items[0].Link.Href, "http://localhost:8080/standups/all#"))
	assert.Contains(t, feed.Items[0].Description, "  - review")

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "Team daily standups")
}

type memPageCache struct {
	mu    sync.Mutex
	pages map[string]map[string][]byte
}

func newMemPageCache() *memPageCache {
	return &memPageCache{pages: make(map[string]map[string][]byte)}
}

func (c *memPageCache) Get(_ context.Context, page, variant string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.pages[page][variant]
	return payload, ok, nil
}

func (c *memPageCache) Set(_ context.Context, page, variant string, payload []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pages[page] == nil {
		c.pages[page] = make(map[string][]byte)
	}
	c.pages[page][variant] = payload
	return nil
}

func (c *memPageCache) Revalidate(_ context.Context, pages ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range pages {
		delete(c.pages, p)
	}
	return nil
}

func TestDeleteStandupUseCase_ListAllDropsDeletedRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStandupRepository(ctrl)
	profiles := mocks.NewMockProfileRepository(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)
	cache := newMemPageCache()
	ctx := context.Background()

	ownerID := uuid.New()
	row := &standup.Standup{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)}
	gomock.InOrder(
		repo.EXPECT().ListAll(gomock.Any(), 0).Return([]*standup.Standup{row}, nil),
		repo.EXPECT().ListAll(gomock.Any(), 0).Return([]*standup.Standup{}, nil),
	)
	profiles.EXPECT().ListAll(gomock.Any()).Return([]*profile.Profile{}, nil).Times(2)
	repo.EXPECT().Delete(gomock.Any(), row.ID, ownerID).Return(nil)
	done := make(chan struct{})
	pub.EXPECT().PublishStandupEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, service.ChangeEvent) error {
		close(done)
		return nil
	})

	list := NewListStandupsUseCase(repo, profiles, cache, time.Minute, logger.NewNopLogger())
	before, err := list.ListAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, NewDeleteStandupUseCase(repo, cache, pub, logger.NewNopLogger()).Execute(ctx, row.ID, ownerID))

	after, err := list.ListAll(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, after)
	waitClosed(t, done)
}
