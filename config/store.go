package config

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/invoice-dashboard/store"
	"github.com/yourusername/invoice-dashboard/store/file"
	"github.com/yourusername/invoice-dashboard/store/gormdb"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := gormdb.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// NewStore builds the store selected by cfg.StoreBackend. With the postgres
// backend and SeedDatabase set, the JSON documents in DataDir are copied into
// the database first.
func NewStore(ctx context.Context, cfg *Config, log logrus.FieldLogger) (store.Store, error) {
	documents := file.NewFileStore(cfg.DataDir)
	if cfg.StoreBackend == BackendFile {
		log.WithField("dir", cfg.DataDir).Info("using JSON document store")
		return documents, nil
	}

	db, err := InitDB(cfg)
	if err != nil {
		return nil, err
	}
	s := gormdb.NewGormStore(db)

	if cfg.SeedDatabase {
		if err := s.Seed(ctx, documents); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		log.WithField("dir", cfg.DataDir).Info("seeded database from JSON documents")
	}
	log.Info("using postgres store")
	return s, nil
}
