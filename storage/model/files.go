package model

import (
	"gorm.io/gorm"
)

// FileAsset holds metadata about an uploaded file. The actual bytes live in
// an external file store; the panel only tracks the record and hands out
// download links.
type FileAsset struct {
	gorm.Model
	// FileID is the external identifier used in API routes and download
	// links
	FileID      string `gorm:"uniqueIndex" json:"id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"type"`
	Downloads   int64  `json:"downloads"`
	// DownloadSlug is the random suffix of the current download link, or
	// nil when no link has been generated yet
	DownloadSlug *string `json:"-"`
}

// FilesStore abstracts file-asset records and download-link management.
type FilesStore interface {
	// List returns all file assets
	List() ([]FileAsset, error)
	// Get returns a file asset by its external id
	Get(fileID string) (*FileAsset, error)
	// Create creates a file asset record and assigns it a FileID
	Create(name string, size int64, contentType string) (*FileAsset, error)
	// Delete deletes a file asset by its external id
	Delete(fileID string) error
	// MintDownloadSlug generates and stores a fresh download slug,
	// invalidating any previous one, and returns the updated asset
	MintDownloadSlug(fileID string) (*FileAsset, error)
	// CountDownload increments the download counter
	CountDownload(fileID string) error
}
