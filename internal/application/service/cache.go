package service

import (
	"context"
	"time"
)

const (
	PageDashboard     = "/dashboard"
	PageInterviewsAll = "/interviews/all"
	PageStandups      = "/standups"
	PageStandupsAll   = "/standups/all"
)

// PageCache holds rendered list payloads keyed by page path plus a variant (owner id or "all").
// Revalidate drops every variant of the given pages.
//
//go:generate mockgen -source=cache.go -destination=../../mocks/mock_cache.go -package=mocks
type PageCache interface {
	Get(ctx context.Context, page, variant string) ([]byte, bool, error)
	Set(ctx context.Context, page, variant string, payload []byte, ttl time.Duration) error
	Revalidate(ctx context.Context, pages ...string) error
}
