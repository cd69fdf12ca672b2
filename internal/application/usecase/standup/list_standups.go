package standup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/interview-tracker/internal/application/pagecache"
	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// Entry is a standup with its author's display name.
type Entry struct {
	*standup.Standup
	UserName string `json:"user_name"`
}

type ListStandupsUseCase struct {
	repo        standup.Repository
	profileRepo profile.Repository
	mine        pagecache.Loader[[]*standup.Standup]
	all         pagecache.Loader[[]Entry]
	logger      logger.Logger
}

func NewListStandupsUseCase(repo standup.Repository, pRepo profile.Repository, cache service.PageCache, cacheTTL time.Duration, log logger.Logger) *ListStandupsUseCase {
	return &ListStandupsUseCase{
		repo:        repo,
		profileRepo: pRepo,
		mine:        pagecache.Loader[[]*standup.Standup]{Cache: cache, TTL: cacheTTL, Logger: log},
		all:         pagecache.Loader[[]Entry]{Cache: cache, TTL: cacheTTL, Logger: log},
		logger:      log,
	}
}

// ListMine returns the owner's standups, newest date first.
func (uc *ListStandupsUseCase) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*standup.Standup, error) {
	ctx, span := tracer.Start(ctx, "ListMyStandups")
	defer span.End()
	return uc.mine.Load(ctx, service.PageStandups, ownerID.String(), func(ctx context.Context) ([]*standup.Standup, error) {
		return uc.repo.ListByOwner(ctx, ownerID)
	})
}

// ListAll returns up to limit standups across owners; limit <= 0 returns all of them.
func (uc *ListStandupsUseCase) ListAll(ctx context.Context, limit int) ([]Entry, error) {
	ctx, span := tracer.Start(ctx, "ListAllStandups")
	defer span.End()

	entries, err := uc.all.Load(ctx, service.PageStandupsAll, fmt.Sprintf("limit-%d", limit), func(ctx context.Context) ([]Entry, error) {
		return uc.loadAll(ctx, limit)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entries, nil
}

func (uc *ListStandupsUseCase) loadAll(ctx context.Context, limit int) ([]Entry, error) {
	var (
		standups []*standup.Standup
		profiles []*profile.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		standups, err = uc.repo.ListAll(gctx, limit)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = uc.profileRepo.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := profile.NameIndex(profiles)
	return lo.Map(standups, func(s *standup.Standup, _ int) Entry {
		return Entry{Standup: s, UserName: profile.NameOf(names, s.OwnerID)}
	}), nil
}
