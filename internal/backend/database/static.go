package database

import (
	"context"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

// StaticDatabase serves the seed records from memory.
type StaticDatabase struct{}

func NewStaticDatabase() *StaticDatabase {
	return &StaticDatabase{}
}

func (s *StaticDatabase) CreateDatabase(ctx context.Context) error {
	return nil
}

func (s *StaticDatabase) DoesDatabaseExist() bool {
	return true
}

func (s *StaticDatabase) Close() error {
	return nil
}

func (s *StaticDatabase) SearchRecords(ctx context.Context) ([]models.DashboardSearchRecord, error) {
	return SeedSearchRecords(), nil
}

func (s *StaticDatabase) ImageRecords(ctx context.Context) ([]models.DashboardImageRecord, error) {
	return SeedImageRecords(), nil
}
