package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jo-hoe/aiexplorer/internal/models"

	_ "modernc.org/sqlite"
)

type SQLiteDatabase struct {
	db               *sql.DB
	connectionString string
}

func NewSQLiteDatabase(connectionString string) (*SQLiteDatabase, error) {
	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}
	// A :memory: database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	return &SQLiteDatabase{
		db:               db,
		connectionString: connectionString,
	}, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS search_records (
		id INTEGER PRIMARY KEY,
		query TEXT NOT NULL,
		date TEXT NOT NULL,
		summary TEXT NOT NULL,
		rank TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS search_record_sources (
		record_id INTEGER NOT NULL REFERENCES search_records(id),
		position INTEGER NOT NULL,
		source TEXT NOT NULL,
		PRIMARY KEY (record_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS image_records (
		id INTEGER PRIMARY KEY,
		prompt TEXT NOT NULL,
		date TEXT NOT NULL,
		url TEXT NOT NULL,
		model TEXT NOT NULL,
		rank TEXT NOT NULL
	)`,
}

func (s *SQLiteDatabase) CreateDatabase(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	if err := seed(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// seed inserts the built-in records. Existing rows are left untouched so the
// call can be repeated.
func seed(ctx context.Context, tx *sql.Tx) error {
	rank := ""
	for _, r := range seedSearchRecords {
		rank = Next(rank)
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO search_records (id, query, date, summary, rank) VALUES (?, ?, ?, ?, ?)",
			r.ID, r.Query, r.Date, r.Summary, rank); err != nil {
			return fmt.Errorf("failed to seed search record %d: %w", r.ID, err)
		}
		for pos, source := range r.Sources {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO search_record_sources (record_id, position, source) VALUES (?, ?, ?)",
				r.ID, pos, source); err != nil {
				return fmt.Errorf("failed to seed source of search record %d: %w", r.ID, err)
			}
		}
	}

	rank = ""
	for _, r := range seedImageRecords {
		rank = Next(rank)
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO image_records (id, prompt, date, url, model, rank) VALUES (?, ?, ?, ?, ?, ?)",
			r.ID, r.Prompt, r.Date, r.URL, r.Model, rank); err != nil {
			return fmt.Errorf("failed to seed image record %d: %w", r.ID, err)
		}
	}
	return nil
}

func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteDatabase) DoesDatabaseExist() bool {
	// In SQLite, the database file is created when you connect to it.
	// So we can assume it exists if we can successfully ping the database.
	err := s.db.Ping()
	return err == nil
}

func (s *SQLiteDatabase) SearchRecords(ctx context.Context) ([]models.DashboardSearchRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, query, date, summary FROM search_records ORDER BY rank")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close() // Explicitly ignore error as we're already returning an error from the function
	}()

	records := []models.DashboardSearchRecord{}
	index := map[int]int{}
	for rows.Next() {
		var r models.DashboardSearchRecord
		if err := rows.Scan(&r.ID, &r.Query, &r.Date, &r.Summary); err != nil {
			return nil, err
		}
		r.Sources = []string{}
		index[r.ID] = len(records)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	_ = rows.Close()

	if err := s.attachSources(ctx, records, index); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SQLiteDatabase) attachSources(ctx context.Context, records []models.DashboardSearchRecord, index map[int]int) error {
	rows, err := s.db.QueryContext(ctx, "SELECT record_id, source FROM search_record_sources ORDER BY record_id, position")
	if err != nil {
		return err
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var id int
		var source string
		if err := rows.Scan(&id, &source); err != nil {
			return err
		}
		if i, ok := index[id]; ok {
			records[i].Sources = append(records[i].Sources, source)
		}
	}
	return rows.Err()
}

func (s *SQLiteDatabase) ImageRecords(ctx context.Context) ([]models.DashboardImageRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, prompt, date, url, model FROM image_records ORDER BY rank")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []models.DashboardImageRecord{}
	for rows.Next() {
		var r models.DashboardImageRecord
		if err := rows.Scan(&r.ID, &r.Prompt, &r.Date, &r.URL, &r.Model); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
