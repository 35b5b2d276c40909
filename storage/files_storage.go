package storage

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/xerodma/panel/storage/model"
)

// FilesStorage implements model.FilesStore using GORM
type FilesStorage struct {
	db *gorm.DB
}

// List returns all file assets
func (s *FilesStorage) List() ([]model.FileAsset, error) {
	var files []model.FileAsset
	if err := s.db.Model(&model.FileAsset{}).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Get returns a file asset by its external id
func (s *FilesStorage) Get(fileID string) (*model.FileAsset, error) {
	var f model.FileAsset
	if err := s.db.Where("file_id = ?", fileID).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NotFoundErrorFmt("file not found: %s", fileID)
		}
		return nil, err
	}
	return &f, nil
}

// Create creates a file asset record and assigns it a fresh FileID
func (s *FilesStorage) Create(name string, size int64, contentType string) (*model.FileAsset, error) {
	if name == "" {
		return nil, errors.Errorf("file name is required")
	}
	f := model.FileAsset{
		FileID:      uuid.NewString(),
		Name:        name,
		Size:        size,
		ContentType: contentType,
	}
	if err := s.db.Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete deletes a file asset by its external id
func (s *FilesStorage) Delete(fileID string) error {
	res := s.db.Where("file_id = ?", fileID).Delete(&model.FileAsset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("file not found: %s", fileID)
	}
	return nil
}

// MintDownloadSlug generates and stores a fresh download slug for the file,
// invalidating any previous link
func (s *FilesStorage) MintDownloadSlug(fileID string) (*model.FileAsset, error) {
	f, err := s.Get(fileID)
	if err != nil {
		return nil, err
	}
	slug := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := s.db.Model(f).Update("download_slug", slug).Error; err != nil {
		return nil, err
	}
	f.DownloadSlug = &slug
	return f, nil
}

// CountDownload increments the download counter
func (s *FilesStorage) CountDownload(fileID string) error {
	res := s.db.Model(&model.FileAsset{}).Where("file_id = ?", fileID).
		Update("downloads", gorm.Expr("downloads + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("file not found: %s", fileID)
	}
	return nil
}
