// internal/handlers/viewstate.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
)

// ViewStateHandler persists per-session list positions so a page can restore
// scroll offset and filters after back/forward navigation.
type ViewStateHandler struct {
	store  ports.ViewStateStore
	logger *slog.Logger
}

// NewViewStateHandler creates a new view state handler
func NewViewStateHandler(store ports.ViewStateStore, logger *slog.Logger) *ViewStateHandler {
	return &ViewStateHandler{
		store:  store,
		logger: logger.With(slog.String("handler", "viewstate")),
	}
}

// Save handles PUT /api/v1/viewstate/{pageKey}
func (h *ViewStateHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	pageKey := r.PathValue("pageKey")
	if pageKey == "" {
		h.respondError(w, http.StatusBadRequest, "Page key is required")
		return
	}

	var req SaveViewStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Save never fails the request: the store logs its own trouble and a lost
	// scroll position is not worth an error dialog.
	h.store.Save(ctx, session.SessionID, ports.ViewState{
		PageKey:      pageKey,
		ScrollOffset: req.ScrollOffset,
		FilterQuery:  req.FilterQuery,
		RestoreWhen:  req.RestoreWhen,
		SavedAtUnix:  time.Now().Unix(),
	})

	w.WriteHeader(http.StatusNoContent)
}

// Load handles GET /api/v1/viewstate/{pageKey}?navigation=back_forward
func (h *ViewStateHandler) Load(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	pageKey := r.PathValue("pageKey")
	navigationKind := r.URL.Query().Get("navigation")

	state, ok := h.store.Load(ctx, session.SessionID, pageKey, navigationKind)
	if !ok {
		h.respondError(w, http.StatusNotFound, "No saved state for this page")
		return
	}

	h.respondJSON(w, http.StatusOK, state)
}

// Clear handles DELETE /api/v1/viewstate/{pageKey}
func (h *ViewStateHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	h.store.Clear(ctx, session.SessionID, r.PathValue("pageKey"))

	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

func (h *ViewStateHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ViewStateHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request DTOs

// SaveViewStateRequest represents the request body for saving view state
type SaveViewStateRequest struct {
	ScrollOffset int      `json:"scroll_offset"`
	FilterQuery  string   `json:"filter_query,omitempty"`
	RestoreWhen  []string `json:"restore_when,omitempty"`
}

// Validate validates the save view state request
func (r *SaveViewStateRequest) Validate() error {
	if r.ScrollOffset < 0 {
		return fmt.Errorf("scroll_offset cannot be negative")
	}
	return nil
}
