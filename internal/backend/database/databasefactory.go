package database

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	TypeStatic = "static"
	TypeSQLite = "sqlite"
)

func NewDatabase(ctx context.Context, databaseType, connectionString string) (database DatabaseService, err error) {
	switch databaseType {
	case TypeStatic, "":
		database = NewStaticDatabase()
	case TypeSQLite:
		database, err = NewSQLiteDatabase(connectionString)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", databaseType)
	}

	// Ensure schema and seeds exist (idempotent), important for in-memory SQLite
	slog.Info("initializing database (ensuring tables and seed records exist)", "type", databaseType)
	if err = database.CreateDatabase(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	return database, nil
}
