// internal/core/domain/draft.go
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DraftSchemaVersion is the current snapshot schema version. Version 0
// snapshots predate the explicit mode flag and are migrated on decode.
const DraftSchemaVersion = 1

// TempIDPrefix marks draft ids that have not been persisted yet. Legacy
// snapshots rely on this prefix to distinguish add-mode from edit-mode data.
const TempIDPrefix = "temp-"

// DraftStep is a step in the look-builder wizard.
type DraftStep string

const (
	StepEmpty            DraftStep = "empty"
	StepNaming           DraftStep = "naming"
	StepImageUploaded    DraftStep = "image_uploaded"
	StepProductsSelected DraftStep = "products_selected"
	StepMarkersPlaced    DraftStep = "markers_placed"
	StepSubmitted        DraftStep = "submitted"
	StepCancelled        DraftStep = "cancelled"
)

// DraftMode tells whether a draft builds a new look or edits a persisted one.
type DraftMode string

const (
	ModeAdd  DraftMode = "add"
	ModeEdit DraftMode = "edit"
)

// Draft errors
var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrCorruptSnapshot   = errors.New("corrupt draft snapshot")
	ErrDraftTerminal     = errors.New("draft is in a terminal state")
)

// LookDraft is the in-progress state of the look-builder wizard. It replaces
// the storage-key heuristics of the old dashboard with an explicit state
// object: the step and mode are recorded, not inferred.
type LookDraft struct {
	SchemaVersion int       `json:"schema_version"`
	ID            string    `json:"id"`
	Mode          DraftMode `json:"mode"`
	Step          DraftStep `json:"step"`
	SellerID      string    `json:"seller_id"`
	Name          string    `json:"name,omitempty"`
	MainImageKey  string    `json:"main_image_key,omitempty"`
	MainImageURL  string    `json:"main_image_url,omitempty"`
	ProductIDs    []string  `json:"product_ids,omitempty"`
	Markers       []Marker  `json:"markers,omitempty"`
	ReturnURL     string    `json:"return_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewAddDraft starts an add-mode draft with a temp id.
func NewAddDraft(sellerID string) *LookDraft {
	now := time.Now()
	return &LookDraft{
		SchemaVersion: DraftSchemaVersion,
		ID:            TempIDPrefix + uuid.New().String(),
		Mode:          ModeAdd,
		Step:          StepEmpty,
		SellerID:      sellerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewEditDraft rebuilds a draft from a persisted look. Edit drafts start at
// markers_placed because every earlier step is already satisfied.
func NewEditDraft(look *Look) *LookDraft {
	now := time.Now()
	return &LookDraft{
		SchemaVersion: DraftSchemaVersion,
		ID:            look.LookID.String(),
		Mode:          ModeEdit,
		Step:          StepMarkersPlaced,
		SellerID:      look.SellerID,
		Name:          look.Name,
		MainImageKey:  look.MainImageKey,
		MainImageURL:  look.MainImageURL,
		ProductIDs:    look.ProductIDs,
		Markers:       look.Markers,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Terminal reports whether the draft reached a terminal step.
func (d *LookDraft) Terminal() bool {
	return d.Step == StepSubmitted || d.Step == StepCancelled
}

// IsTemp reports whether the draft id is an unpersisted temp id.
func (d *LookDraft) IsTemp() bool {
	return strings.HasPrefix(d.ID, TempIDPrefix)
}

// SetName transitions empty/naming -> naming. Renaming is also allowed from
// any later non-terminal step without regressing it.
func (d *LookDraft) SetName(name string) error {
	if d.Terminal() {
		return fmt.Errorf("%w: %s", ErrDraftTerminal, d.Step)
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	d.Name = name
	if d.Step == StepEmpty {
		d.Step = StepNaming
	}
	d.touch()
	return nil
}

// AttachImage transitions naming -> image_uploaded. Replacing the image from
// a later step keeps the step.
func (d *LookDraft) AttachImage(key, url string) error {
	if d.Terminal() {
		return fmt.Errorf("%w: %s", ErrDraftTerminal, d.Step)
	}
	if d.Step == StepEmpty {
		return fmt.Errorf("%w: cannot attach image at step %s", ErrInvalidTransition, d.Step)
	}
	if key == "" {
		return fmt.Errorf("image key is required")
	}
	d.MainImageKey = key
	d.MainImageURL = url
	if d.Step == StepNaming {
		d.Step = StepImageUploaded
	}
	d.touch()
	return nil
}

// SelectProducts transitions image_uploaded -> products_selected. Changing
// the selection drops markers that reference removed products.
func (d *LookDraft) SelectProducts(productIDs []string) error {
	if d.Terminal() {
		return fmt.Errorf("%w: %s", ErrDraftTerminal, d.Step)
	}
	if d.Step == StepEmpty || d.Step == StepNaming {
		return fmt.Errorf("%w: cannot select products at step %s", ErrInvalidTransition, d.Step)
	}
	if len(productIDs) == 0 {
		return fmt.Errorf("at least one product is required")
	}
	d.ProductIDs = productIDs

	selected := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		selected[id] = struct{}{}
	}
	kept := d.Markers[:0]
	for _, m := range d.Markers {
		if _, ok := selected[m.ProductID]; ok {
			kept = append(kept, m)
		}
	}
	d.Markers = kept

	if d.Step == StepImageUploaded {
		d.Step = StepProductsSelected
	}
	if d.Step == StepMarkersPlaced && len(d.Markers) == 0 {
		d.Step = StepProductsSelected
	}
	d.touch()
	return nil
}

// PlaceMarkers transitions products_selected -> markers_placed. Every marker
// must reference a selected product.
func (d *LookDraft) PlaceMarkers(markers []Marker) error {
	if d.Terminal() {
		return fmt.Errorf("%w: %s", ErrDraftTerminal, d.Step)
	}
	if d.Step != StepProductsSelected && d.Step != StepMarkersPlaced {
		return fmt.Errorf("%w: cannot place markers at step %s", ErrInvalidTransition, d.Step)
	}
	if len(markers) == 0 {
		return fmt.Errorf("at least one marker is required")
	}

	selected := make(map[string]struct{}, len(d.ProductIDs))
	for _, id := range d.ProductIDs {
		selected[id] = struct{}{}
	}
	for _, m := range markers {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := selected[m.ProductID]; !ok {
			return fmt.Errorf("marker references unselected product: %s", m.ProductID)
		}
	}

	d.Markers = markers
	d.Step = StepMarkersPlaced
	d.touch()
	return nil
}

// Submit transitions markers_placed -> submitted and returns the look to
// persist. Edit-mode drafts keep their persisted look id.
func (d *LookDraft) Submit() (*Look, error) {
	if d.Step != StepMarkersPlaced {
		return nil, fmt.Errorf("%w: cannot submit at step %s", ErrInvalidTransition, d.Step)
	}

	look := &Look{
		SellerID:     d.SellerID,
		Name:         d.Name,
		MainImageKey: d.MainImageKey,
		MainImageURL: d.MainImageURL,
		ProductIDs:   d.ProductIDs,
		Markers:      d.Markers,
		Status:       LookStatusPublished,
	}
	if d.Mode == ModeEdit {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, fmt.Errorf("edit draft has non-uuid id %q: %w", d.ID, err)
		}
		look.LookID = id
	}
	if err := look.Validate(); err != nil {
		return nil, err
	}

	d.Step = StepSubmitted
	d.touch()
	return look, nil
}

// Cancel transitions any non-terminal step -> cancelled.
func (d *LookDraft) Cancel() error {
	if d.Terminal() {
		return fmt.Errorf("%w: %s", ErrDraftTerminal, d.Step)
	}
	d.Step = StepCancelled
	d.touch()
	return nil
}

func (d *LookDraft) touch() {
	d.UpdatedAt = time.Now()
}

// EncodeSnapshot serializes the draft as a single versioned JSON document.
func (d *LookDraft) EncodeSnapshot() ([]byte, error) {
	d.SchemaVersion = DraftSchemaVersion
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored snapshot. Unparseable data returns
// ErrCorruptSnapshot so callers clear storage and start fresh; there is no
// partial recovery. Version 0 snapshots are migrated: their mode is inferred
// with the historical heuristic since they carry no mode flag.
func DecodeSnapshot(data []byte) (*LookDraft, error) {
	var draft LookDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if draft.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrCorruptSnapshot)
	}

	if draft.SchemaVersion == 0 {
		migrateLegacySnapshot(&draft)
	}
	return &draft, nil
}

// migrateLegacySnapshot fills in the mode and step for pre-versioned
// snapshots. A temp-prefixed id is always add-mode data, regardless of how
// far the flow progressed; a persisted id with markers is edit-mode.
func migrateLegacySnapshot(d *LookDraft) {
	d.SchemaVersion = DraftSchemaVersion

	if strings.HasPrefix(d.ID, TempIDPrefix) {
		d.Mode = ModeAdd
	} else if _, err := uuid.Parse(d.ID); err == nil && len(d.Markers) > 0 {
		d.Mode = ModeEdit
	} else {
		d.Mode = ModeAdd
	}

	if d.Step == "" {
		d.Step = inferStep(d)
	}
}

// inferStep derives the wizard step from whichever fields a legacy snapshot
// managed to fill in.
func inferStep(d *LookDraft) DraftStep {
	switch {
	case len(d.Markers) > 0:
		return StepMarkersPlaced
	case len(d.ProductIDs) > 0:
		return StepProductsSelected
	case d.MainImageKey != "" || d.MainImageURL != "":
		return StepImageUploaded
	case d.Name != "":
		return StepNaming
	default:
		return StepEmpty
	}
}
