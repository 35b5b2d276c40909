package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GuideAccess is the outcome of evaluating a guide's password gate.
type GuideAccess int

// Constants for GuideAccess
const (
	AccessGranted GuideAccess = iota
	AccessDeniedMissingPassword
	AccessDeniedInvalidPassword
)

// Granted returns a bool indicating if access was granted
func (a GuideAccess) Granted() bool {
	return a == AccessGranted
}

// Guide holds a product guide that may optionally be password protected.
// The invariant PasswordProtected == (PasswordHash != nil) is enforced by
// GuidesStore.SetSecret, which updates both fields in a single write.
type Guide struct {
	gorm.Model
	// GuideID is the external identifier used in API routes
	GuideID     string `gorm:"uniqueIndex" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// Content is only returned to viewers that passed the access gate
	Content    string         `json:"content,omitempty"`
	AuthorName string         `json:"author_name"`
	Tags       datatypes.JSON `json:"tags,omitempty"`
	// PasswordProtected indicates that viewing requires a shared secret
	PasswordProtected bool `json:"is_password_protected"`
	// PasswordHash stores a bcrypt hash of the guide secret, or nil when
	// the guide is unprotected
	PasswordHash *string `json:"-"`
}

// GuideUpdate carries the updatable content fields of a Guide; nil fields
// are left unchanged. The password gate is never touched through here, only
// through GuidesStore.SetSecret.
type GuideUpdate struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Content     *string         `json:"content"`
	AuthorName  *string         `json:"author_name"`
	Tags        *datatypes.JSON `json:"tags"`
}

// GuidesStore abstracts guide CRUD and the guide access gate.
type GuidesStore interface {
	// List returns all guides without password hashes; protected guides
	// are returned without content
	List() ([]Guide, error)
	// Get returns a guide by its external id
	Get(guideID string) (*Guide, error)
	// Create creates a guide; a non-empty password makes it protected
	Create(guide Guide, password string) (*Guide, error)
	// Update updates the content fields of a guide
	Update(guideID string, upd GuideUpdate) (*Guide, error)
	// Delete deletes a guide by its external id
	Delete(guideID string) error
	// CheckAccess evaluates the access gate for a guide. It is stateless
	// and re-evaluated on every call; an unknown guideID yields a
	// NotFoundError.
	CheckAccess(guideID, password string) (GuideAccess, error)
	// SetSecret sets or clears a guide's secret. A non-empty password is
	// hashed and the protected flag set; an empty password removes
	// protection. Hash and flag are written atomically.
	SetSecret(guideID, newPassword string) error
}
