package database

import (
	"context"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

// DatabaseService is a read-only source of dashboard records.
type DatabaseService interface {
	// CreateDatabase ensures the schema exists and the seed records are present.
	// It is idempotent.
	CreateDatabase(ctx context.Context) error
	DoesDatabaseExist() bool
	Close() error

	SearchRecords(ctx context.Context) ([]models.DashboardSearchRecord, error)
	ImageRecords(ctx context.Context) ([]models.DashboardImageRecord, error)
}
