// internal/core/domain/look.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LookStatus represents the lifecycle status of a look
type LookStatus string

// Status constants
const (
	LookStatusDraft     LookStatus = "draft"
	LookStatusPublished LookStatus = "published"
	LookStatusArchived  LookStatus = "archived"
)

// UserType represents the dashboard tenant role
type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeSeller UserType = "seller"
)

// Marker is an (x, y) coordinate on a look's main image tied to a product.
// Coordinates are fractions of the image dimensions in [0, 1].
type Marker struct {
	ProductID string  `json:"product_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Validate checks marker coordinates and product reference
func (m Marker) Validate() error {
	if m.ProductID == "" {
		return fmt.Errorf("marker product_id is required")
	}
	if m.X < 0 || m.X > 1 || m.Y < 0 || m.Y > 1 {
		return fmt.Errorf("marker coordinates must be within [0,1]: got (%v, %v)", m.X, m.Y)
	}
	return nil
}

// Look is a curated product display image with clickable markers.
type Look struct {
	LookID       uuid.UUID  `json:"look_id"`
	SellerID     string     `json:"seller_id"`
	Name         string     `json:"name"`
	MainImageKey string     `json:"main_image_key"`
	MainImageURL string     `json:"main_image_url,omitempty"`
	ProductIDs   []string   `json:"product_ids,omitempty"`
	Markers      []Marker   `json:"markers,omitempty"`
	Status       LookStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the look
func (l *Look) Validate() error {
	if l.SellerID == "" {
		return fmt.Errorf("seller_id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if l.MainImageKey == "" {
		return fmt.Errorf("main_image_key is required")
	}
	selected := make(map[string]struct{}, len(l.ProductIDs))
	for _, id := range l.ProductIDs {
		selected[id] = struct{}{}
	}
	for _, m := range l.Markers {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := selected[m.ProductID]; !ok {
			return fmt.Errorf("marker references unselected product: %s", m.ProductID)
		}
	}
	if l.Status == "" {
		l.Status = LookStatusDraft
	}
	return nil
}

// PrepareForStorage prepares the look for database storage
func (l *Look) PrepareForStorage() {
	if l.LookID == uuid.Nil {
		l.LookID = uuid.New()
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	if l.Status == "" {
		l.Status = LookStatusDraft
	}
}
