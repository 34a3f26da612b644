// internal/core/services/catalog.go
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/sellerhub/opsdash-be/internal/core/normalize"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

const catalogCacheTTL = 30 * time.Second

// resourceOptions reshapes each upstream resource into the column names the
// dashboard tables expect. Resources without an entry pass through as-is.
var resourceOptions = map[string]normalize.Options{
	"products": {
		Rename: map[string]string{"title": "name", "qty": "stock"},
	},
	"orders": {
		Rename:   map[string]string{"order_no": "order_id"},
		SortBy:   "created_at",
		SortDesc: true,
	},
	"shipments": {
		Rename: map[string]string{"tracking_no": "tracking_number"},
	},
	"qc_submissions": {
		SortBy:   "submitted_at",
		SortDesc: true,
	},
}

// CatalogService proxies the upstream commerce API's list endpoints into
// normalized table pages. Responses are cached per seller for a short window
// so rapid re-fetches while paging do not hammer the upstream.
type CatalogService struct {
	upstream ports.UpstreamClient
	sessions ports.SessionStore
	cache    ports.CacheRepository
	logger   *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(upstream ports.UpstreamClient, sessions ports.SessionStore, cache ports.CacheRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		upstream: upstream,
		sessions: sessions,
		cache:    cache,
		logger:   logger.With(slog.String("service", "catalog")),
	}
}

// List fetches one upstream list page and normalizes it. Sellers are scoped
// to their own data regardless of what the request asks for; a 401 from the
// upstream invalidates the dashboard session before the error is returned.
func (s *CatalogService) List(ctx context.Context, sessionID string, req ports.ListRequest) (normalize.Result, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return normalize.Result{}, err
	}

	if session.SellerID != "" {
		if req.Query == nil {
			req.Query = make(map[string]string)
		}
		req.Query["seller_id"] = session.SellerID
	}

	key := s.cacheKey(session.SellerID, req)

	var cached normalize.Result
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.logger.DebugContext(ctx, "catalog cache hit",
			slog.String("resource", req.Resource))
		return cached, nil
	}

	raw, err := s.upstream.FetchList(ctx, session.AccessToken, req)
	if err != nil {
		if errors.Is(err, ports.ErrUnauthorized) {
			s.logger.InfoContext(ctx, "upstream rejected session, invalidating",
				slog.String("session_id", sessionID))
			if invErr := s.sessions.Invalidate(ctx, sessionID); invErr != nil {
				s.logger.WarnContext(ctx, "failed to invalidate rejected session",
					slog.String("error", invErr.Error()))
			}
			return normalize.Result{}, ports.ErrUnauthorized
		}
		return normalize.Result{}, fmt.Errorf("upstream fetch failed: %w", err)
	}

	result, err := normalize.MapToTable(raw, resourceOptions[req.Resource])
	if err != nil {
		return normalize.Result{}, fmt.Errorf("failed to normalize upstream response: %w", err)
	}

	if result.Success {
		if err := s.cache.SetWithTTL(ctx, key, result, catalogCacheTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to cache catalog page",
				slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// cacheKey builds a deterministic key from the request shape. Query params
// are sorted so equivalent requests share an entry.
func (s *CatalogService) cacheKey(sellerID string, req ports.ListRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d", req.Resource, req.Page, req.PageSize)

	keys := make([]string, 0, len(req.Query))
	for k := range req.Query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "|%s=%s", k, req.Query[k])
	}

	scope := sellerID
	if scope == "" {
		scope = "admin"
	}
	return fmt.Sprintf("catalog:%s:%s", scope, hex.EncodeToString(h.Sum(nil))[:16])
}
