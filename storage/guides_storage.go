package storage

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/xerodma/panel/storage/model"
)

// GuidesStorage implements model.GuidesStore using GORM
type GuidesStorage struct {
	db *gorm.DB
}

// List returns all guides without password hashes; the content of protected
// guides is withheld until the access gate has been passed
func (s *GuidesStorage) List() ([]model.Guide, error) {
	var guides []model.Guide
	if err := s.db.Model(&model.Guide{}).Find(&guides).Error; err != nil {
		return nil, err
	}
	for i := range guides {
		guides[i].PasswordHash = nil
		if guides[i].PasswordProtected {
			guides[i].Content = ""
		}
	}
	return guides, nil
}

// Get returns a guide by its external id, without the password hash
func (s *GuidesStorage) Get(guideID string) (*model.Guide, error) {
	g, err := s.fetch(guideID)
	if err != nil {
		return nil, err
	}
	g.PasswordHash = nil
	return g, nil
}

// Create creates a guide; a non-empty password makes it protected
func (s *GuidesStorage) Create(guide model.Guide, password string) (*model.Guide, error) {
	if guide.Title == "" {
		return nil, errors.Errorf("guide title is required")
	}
	if guide.GuideID == "" {
		guide.GuideID = uuid.NewString()
	}
	var existing int64
	if err := s.db.Model(&model.Guide{}).Where("guide_id = ?", guide.GuideID).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, model.AlreadyExistsErrorFmt("guide already exists: %s", guide.GuideID)
	}
	if password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		guide.PasswordHash = &hash
		guide.PasswordProtected = true
	} else {
		guide.PasswordHash = nil
		guide.PasswordProtected = false
	}
	if err := s.db.Create(&guide).Error; err != nil {
		return nil, err
	}
	guide.PasswordHash = nil
	return &guide, nil
}

// Update updates the content fields of a guide; the password gate is only
// changed through SetSecret
func (s *GuidesStorage) Update(guideID string, upd model.GuideUpdate) (*model.Guide, error) {
	g, err := s.fetch(guideID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		g.Title = *upd.Title
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	if upd.Category != nil {
		g.Category = *upd.Category
	}
	if upd.Content != nil {
		g.Content = *upd.Content
	}
	if upd.AuthorName != nil {
		g.AuthorName = *upd.AuthorName
	}
	if upd.Tags != nil {
		g.Tags = *upd.Tags
	}
	if err := s.db.Save(g).Error; err != nil {
		return nil, err
	}
	g.PasswordHash = nil
	return g, nil
}

// Delete deletes a guide by its external id
func (s *GuidesStorage) Delete(guideID string) error {
	res := s.db.Where("guide_id = ?", guideID).Delete(&model.Guide{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("guide not found: %s", guideID)
	}
	return nil
}

// CheckAccess evaluates the access gate for a guide. Unprotected guides
// always grant, regardless of any supplied password. The check is stateless
// and re-evaluated on every call.
func (s *GuidesStorage) CheckAccess(guideID, password string) (model.GuideAccess, error) {
	g, err := s.fetch(guideID)
	if err != nil {
		return model.AccessDeniedInvalidPassword, err
	}
	if !g.PasswordProtected {
		return model.AccessGranted, nil
	}
	if password == "" {
		return model.AccessDeniedMissingPassword, nil
	}
	if g.PasswordHash == nil || !verifyPassword(*g.PasswordHash, password) {
		return model.AccessDeniedInvalidPassword, nil
	}
	return model.AccessGranted, nil
}

// SetSecret sets or clears a guide's secret. A non-empty password is hashed
// and stored with the protected flag set; an empty password removes
// protection. Hash and flag go to the database in a single UPDATE so the
// two columns can never diverge.
func (s *GuidesStorage) SetSecret(guideID, newPassword string) error {
	g, err := s.fetch(guideID)
	if err != nil {
		return err
	}
	var hash *string
	protected := false
	if newPassword != "" {
		h, err := hashPassword(newPassword)
		if err != nil {
			return err
		}
		hash = &h
		protected = true
	}
	return s.db.Model(g).Updates(
		map[string]any{
			"password_hash":      hash,
			"password_protected": protected,
		},
	).Error
}

func (s *GuidesStorage) fetch(guideID string) (*model.Guide, error) {
	var g model.Guide
	if err := s.db.Where("guide_id = ?", guideID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NotFoundErrorFmt("guide not found: %s", guideID)
		}
		return nil, err
	}
	return &g, nil
}
