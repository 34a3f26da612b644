// internal/core/ports/viewstate.go
package ports

import "context"

// ViewState is a page's saved list position. RestoreWhen names the navigation
// kinds the position should be restored for; on any other navigation the
// saved position is discarded.
type ViewState struct {
	PageKey      string   `json:"page_key"`
	ScrollOffset int      `json:"scroll_offset"`
	FilterQuery  string   `json:"filter_query,omitempty"`
	RestoreWhen  []string `json:"restore_when,omitempty"`
	SavedAtUnix  int64    `json:"saved_at_unix"`
}

// ViewStateStore persists per-session view state. Implementations must treat
// storage failures as non-fatal: losing a scroll position never breaks
// navigation.
type ViewStateStore interface {
	Save(ctx context.Context, sessionID string, state ViewState)
	// Load returns the state and whether the given navigation kind qualifies
	// for restoration. A miss or a storage failure returns ok=false.
	Load(ctx context.Context, sessionID, pageKey, navigationKind string) (ViewState, bool)
	Clear(ctx context.Context, sessionID, pageKey string)
}
