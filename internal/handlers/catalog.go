// internal/handlers/catalog.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
)

// catalogResources are the upstream list resources the dashboard proxies.
var catalogResources = map[string]bool{
	"products":       true,
	"orders":         true,
	"sellers":        true,
	"suppliers":      true,
	"shipments":      true,
	"qc_submissions": true,
}

// CatalogHandler proxies upstream list resources into normalized table pages
type CatalogHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service ports.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// List handles GET /api/v1/catalog/{resource}
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	resource := r.PathValue("resource")
	if !catalogResources[resource] {
		h.respondError(w, http.StatusNotFound, "Unknown catalog resource")
		return
	}

	req := h.parseListRequest(r, resource)

	result, err := h.service.List(ctx, session.SessionID, req)
	if err != nil {
		if errors.Is(err, ports.ErrUnauthorized) {
			// The session was already invalidated; the client must re-login.
			h.respondError(w, http.StatusUnauthorized, "Session expired")
			return
		}

		h.logger.ErrorContext(ctx, "failed to fetch catalog resource",
			slog.String("resource", resource),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, "Failed to fetch data")
		return
	}

	// A failed upstream envelope still returns 200: the page renders the
	// upstream message alongside the empty table.
	h.respondJSON(w, http.StatusOK, result)
}

// parseListRequest builds the upstream request from query parameters. Any
// parameter that is not pagination is forwarded as an upstream filter.
func (h *CatalogHandler) parseListRequest(r *http.Request, resource string) ports.ListRequest {
	req := ports.ListRequest{
		Resource: resource,
		Query:    make(map[string]string),
		Page:     1,
		PageSize: 20,
	}

	for key, values := range r.URL.Query() {
		if len(values) == 0 || values[0] == "" {
			continue
		}

		switch key {
		case "page":
			if p, err := strconv.Atoi(values[0]); err == nil && p > 0 {
				req.Page = p
			}
		case "limit":
			if l, err := strconv.Atoi(values[0]); err == nil && l > 0 {
				if l > 100 {
					req.PageSize = 100
				} else {
					req.PageSize = l
				}
			}
		default:
			req.Query[key] = values[0]
		}
	}

	return req
}

// Helper methods

func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
