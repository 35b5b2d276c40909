package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/xerodma/panel/storage/model"
)

// Storage is a GORM-based storage implementation
type Storage struct {
	db *gorm.DB
}

var models = []any{
	&model.User{},
	&model.Guide{},
	&model.FileAsset{},
}

// NewStorage creates a new GORM-based storage
func NewStorage(config Config) (*Storage, error) {
	db, err := Connect(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate the schemas
	if err = db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// UsersStorage returns a UsersStorage
func (s *Storage) UsersStorage() *UsersStorage {
	return &UsersStorage{db: s.db}
}

// GuidesStorage returns a GuidesStorage
func (s *Storage) GuidesStorage() *GuidesStorage {
	return &GuidesStorage{db: s.db}
}

// FilesStorage returns a FilesStorage
func (s *Storage) FilesStorage() *FilesStorage {
	return &FilesStorage{db: s.db}
}

// LoadStorageBackends initializes a storage and returns grouped backends.
func LoadStorageBackends(cfg Config) (model.Backends, error) {
	warehouse, err := NewStorage(cfg)
	if err != nil {
		return model.Backends{}, err
	}
	return model.Backends{
		Users:  warehouse.UsersStorage(),
		Guides: warehouse.GuidesStorage(),
		Files:  warehouse.FilesStorage(),
	}, nil
}
