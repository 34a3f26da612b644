// internal/core/ports/catalog_service.go
package ports

import (
	"context"

	"github.com/sellerhub/opsdash-be/internal/core/normalize"
)

// CatalogService proxies upstream list resources (products, orders, sellers)
// into normalized table pages. An upstream credential rejection invalidates
// the dashboard session before the error is returned.
type CatalogService interface {
	List(ctx context.Context, sessionID string, req ListRequest) (normalize.Result, error)
}
