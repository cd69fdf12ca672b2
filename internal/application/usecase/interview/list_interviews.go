package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/interview-tracker/internal/application/listview"
	"github.com/khoahotran/interview-tracker/internal/application/pagecache"
	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const cacheVariantAll = "all"

// ListOutput is the derived view plus the option lists used by the filter bar.
type ListOutput struct {
	listview.Result
	FilterActive bool     `json:"filter_active"`
	Profiles     []string `json:"profiles"`
	UserNames    []string `json:"user_names,omitempty"`
}

type ListInterviewsUseCase struct {
	repo        interview.Repository
	profileRepo profile.Repository
	pages       pagecache.Loader[[]listview.Row]
}

func NewListInterviewsUseCase(repo interview.Repository, pRepo profile.Repository, cache service.PageCache, cacheTTL time.Duration, log logger.Logger) *ListInterviewsUseCase {
	return &ListInterviewsUseCase{
		repo:        repo,
		profileRepo: pRepo,
		pages:       pagecache.Loader[[]listview.Row]{Cache: cache, TTL: cacheTTL, Logger: log},
	}
}

// ListMine returns the dashboard view for one owner.
func (uc *ListInterviewsUseCase) ListMine(ctx context.Context, ownerID uuid.UUID, f listview.Filter) (*ListOutput, error) {
	ctx, span := tracer.Start(ctx, "ListMyInterviews")
	defer span.End()

	rows, err := uc.pages.Load(ctx, service.PageDashboard, ownerID.String(), func(ctx context.Context) ([]listview.Row, error) {
		items, err := uc.repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		return listview.RowsOf(items), nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &ListOutput{
		Result:       listview.Apply(rows, f, listview.ScopeOwner),
		FilterActive: f.Active(),
		Profiles:     listview.UniqueProfiles(rows),
	}, nil
}

// ListAll returns every owner's interviews tagged with the owner's display name.
func (uc *ListInterviewsUseCase) ListAll(ctx context.Context, f listview.Filter) (*ListOutput, error) {
	ctx, span := tracer.Start(ctx, "ListAllInterviews")
	defer span.End()

	rows, err := uc.pages.Load(ctx, service.PageInterviewsAll, cacheVariantAll, uc.loadAllRows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &ListOutput{
		Result:       listview.Apply(rows, f, listview.ScopeAll),
		FilterActive: f.Active(),
		Profiles:     listview.ProfilesForUser(rows, f.UserName),
		UserNames:    listview.UniqueUserNames(rows),
	}, nil
}

func (uc *ListInterviewsUseCase) loadAllRows(ctx context.Context) ([]listview.Row, error) {
	var (
		items    []*interview.Interview
		profiles []*profile.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.repo.ListAll(gctx)
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
	return lo.Map(items, func(iv *interview.Interview, _ int) listview.Row {
		return listview.Row{Interview: iv, UserName: profile.NameOf(names, iv.OwnerID)}
	}), nil
}
