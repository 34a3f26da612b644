// internal/core/services/draft.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// DraftService drives the look-builder wizard. Exactly one draft exists per
// session; starting a flow that does not match the stored draft's mode
// discards the leftover instead of trying to merge.
type DraftService struct {
	store       ports.DraftStore
	looks       ports.LookRepository
	invalidator ports.CacheInvalidator
	logger      *slog.Logger
}

var _ ports.DraftService = (*DraftService)(nil)

// NewDraftService creates a new draft service
func NewDraftService(store ports.DraftStore, looks ports.LookRepository, invalidator ports.CacheInvalidator, logger *slog.Logger) *DraftService {
	return &DraftService{
		store:       store,
		looks:       looks,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "draft")),
	}
}

// StartAdd begins an add-mode draft. An existing add-mode draft is resumed so
// a refresh mid-flow loses nothing; an edit-mode leftover is discarded because
// its persisted-look data would bleed into the new look.
func (s *DraftService) StartAdd(ctx context.Context, sessionID, sellerID string) (*domain.LookDraft, error) {
	existing, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.Mode == domain.ModeAdd && !existing.Terminal() {
			s.logger.DebugContext(ctx, "resuming add draft",
				slog.String("draft_id", existing.ID))
			return existing, nil
		}

		s.logger.InfoContext(ctx, "discarding leftover draft",
			slog.String("draft_id", existing.ID),
			slog.String("mode", string(existing.Mode)))
		if err := s.store.ClearSnapshot(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("failed to clear leftover draft: %w", err)
		}
	}

	draft := domain.NewAddDraft(sellerID)
	if err := s.save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "started add draft",
		slog.String("draft_id", draft.ID),
		slog.String("seller_id", sellerID))

	return draft, nil
}

// StartEdit begins an edit-mode draft seeded from the persisted look. Any
// stored draft is replaced, including an in-progress edit of another look.
func (s *DraftService) StartEdit(ctx context.Context, sessionID string, lookID uuid.UUID) (*domain.LookDraft, error) {
	look, err := s.looks.FindByID(ctx, lookID)
	if err != nil {
		return nil, fmt.Errorf("failed to load look: %w", err)
	}
	if look == nil {
		return nil, fmt.Errorf("look not found: %s", lookID)
	}

	existing, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Mode == domain.ModeEdit && existing.ID == lookID.String() && !existing.Terminal() {
			s.logger.DebugContext(ctx, "resuming edit draft",
				slog.String("draft_id", existing.ID))
			return existing, nil
		}
		if err := s.store.ClearSnapshot(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("failed to clear leftover draft: %w", err)
		}
	}

	draft := domain.NewEditDraft(look)
	if err := s.save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "started edit draft",
		slog.String("look_id", lookID.String()))

	return draft, nil
}

// Resume returns the session's stored draft, if any.
func (s *DraftService) Resume(ctx context.Context, sessionID string) (*domain.LookDraft, error) {
	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ports.ErrDraftNotFound
	}
	return draft, nil
}

// SetName records the look name on the draft.
func (s *DraftService) SetName(ctx context.Context, sessionID, name string) (*domain.LookDraft, error) {
	return s.mutate(ctx, sessionID, func(d *domain.LookDraft) error {
		return d.SetName(name)
	})
}

// AttachImage records the uploaded main image.
func (s *DraftService) AttachImage(ctx context.Context, sessionID, fileKey, fileURL string) (*domain.LookDraft, error) {
	return s.mutate(ctx, sessionID, func(d *domain.LookDraft) error {
		return d.AttachImage(fileKey, fileURL)
	})
}

// SelectProducts records the draft's product selection.
func (s *DraftService) SelectProducts(ctx context.Context, sessionID string, productIDs []string) (*domain.LookDraft, error) {
	return s.mutate(ctx, sessionID, func(d *domain.LookDraft) error {
		return d.SelectProducts(productIDs)
	})
}

// PlaceMarkers records marker placements on the main image.
func (s *DraftService) PlaceMarkers(ctx context.Context, sessionID string, markers []domain.Marker) (*domain.LookDraft, error) {
	return s.mutate(ctx, sessionID, func(d *domain.LookDraft) error {
		return d.PlaceMarkers(markers)
	})
}

// Submit persists the draft as a look and removes the snapshot. Add-mode
// drafts insert a new look; edit-mode drafts update the existing one.
func (s *DraftService) Submit(ctx context.Context, sessionID string) (*domain.Look, error) {
	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ports.ErrDraftNotFound
	}

	look, err := draft.Submit()
	if err != nil {
		return nil, err
	}

	if draft.Mode == domain.ModeEdit {
		err = s.looks.Update(ctx, look)
	} else {
		look.PrepareForStorage()
		err = s.looks.Save(ctx, look)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist look: %w", err)
	}

	if err := s.store.ClearSnapshot(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear submitted draft",
			slog.String("error", err.Error()))
	}

	s.invalidator.InvalidateLook(ctx, look.LookID.String(), look.SellerID)

	s.logger.InfoContext(ctx, "draft submitted",
		slog.String("look_id", look.LookID.String()),
		slog.String("mode", string(draft.Mode)))

	return look, nil
}

// Cancel discards the session's draft.
func (s *DraftService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.store.ClearSnapshot(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}

	s.logger.InfoContext(ctx, "draft cancelled",
		slog.String("session_id", sessionID))

	return nil
}

// mutate loads the draft, applies the change and saves the result back.
func (s *DraftService) mutate(ctx context.Context, sessionID string, fn func(*domain.LookDraft) error) (*domain.LookDraft, error) {
	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ports.ErrDraftNotFound
	}

	if err := fn(draft); err != nil {
		return nil, err
	}

	if err := s.save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// load decodes the session's snapshot. A corrupt snapshot is cleared and
// treated as absent; there is no partial recovery.
func (s *DraftService) load(ctx context.Context, sessionID string) (*domain.LookDraft, error) {
	data, err := s.store.LoadSnapshot(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrDraftNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft snapshot: %w", err)
	}

	draft, err := domain.DecodeSnapshot(data)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptSnapshot) {
			s.logger.WarnContext(ctx, "clearing corrupt draft snapshot",
				slog.String("error", err.Error()))
			_ = s.store.ClearSnapshot(ctx, sessionID)
			return nil, nil
		}
		return nil, err
	}

	return draft, nil
}

func (s *DraftService) save(ctx context.Context, sessionID string, draft *domain.LookDraft) error {
	data, err := draft.EncodeSnapshot()
	if err != nil {
		return err
	}
	if err := s.store.SaveSnapshot(ctx, sessionID, data); err != nil {
		return fmt.Errorf("failed to save draft snapshot: %w", err)
	}
	return nil
}
