package database

import (
	"context"
	"testing"
)

func newTestDB(t *testing.T) *SQLiteDatabase {
	t.Helper()

	ds, err := NewSQLiteDatabase(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteDatabase error: %v", err)
	}
	if err := ds.CreateDatabase(context.Background()); err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}
	t.Cleanup(func() { _ = ds.Close() })
	return ds
}

func TestSQLite_DoesDatabaseExist(t *testing.T) {
	ds := newTestDB(t)
	if !ds.DoesDatabaseExist() {
		t.Fatalf("expected DoesDatabaseExist to return true")
	}
}

func TestSQLite_SearchRecordsMatchSeeds(t *testing.T) {
	ds := newTestDB(t)

	got, err := ds.SearchRecords(context.Background())
	if err != nil {
		t.Fatalf("SearchRecords error: %v", err)
	}
	want := SeedSearchRecords()
	if len(got) != len(want) {
		t.Fatalf("expected %d search records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Query != want[i].Query || got[i].Summary != want[i].Summary || got[i].Date != want[i].Date {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
		if len(got[i].Sources) != len(want[i].Sources) {
			t.Fatalf("record %d has %d sources, want %d", i, len(got[i].Sources), len(want[i].Sources))
		}
		for j := range want[i].Sources {
			if got[i].Sources[j] != want[i].Sources[j] {
				t.Errorf("record %d source %d = %q, want %q", i, j, got[i].Sources[j], want[i].Sources[j])
			}
		}
	}
}

func TestSQLite_ImageRecordsMatchSeeds(t *testing.T) {
	ds := newTestDB(t)

	got, err := ds.ImageRecords(context.Background())
	if err != nil {
		t.Fatalf("ImageRecords error: %v", err)
	}
	want := SeedImageRecords()
	if len(got) != len(want) {
		t.Fatalf("expected %d image records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSQLite_CreateDatabaseIsIdempotent(t *testing.T) {
	ds := newTestDB(t)

	for i := 0; i < 3; i++ {
		if err := ds.CreateDatabase(context.Background()); err != nil {
			t.Fatalf("CreateDatabase #%d error: %v", i+2, err)
		}
	}

	searches, err := ds.SearchRecords(context.Background())
	if err != nil {
		t.Fatalf("SearchRecords error: %v", err)
	}
	if len(searches) != 2 {
		t.Fatalf("expected 2 search records after repeated seeding, got %d", len(searches))
	}
	if len(searches[0].Sources) != 3 {
		t.Fatalf("expected sources not to be duplicated, got %v", searches[0].Sources)
	}
}

func TestStatic_ReturnsIndependentCopies(t *testing.T) {
	ds := NewStaticDatabase()

	first, _ := ds.SearchRecords(context.Background())
	first[0].Sources[0] = "mutated"
	first[0].Query = "mutated"

	second, _ := ds.SearchRecords(context.Background())
	if second[0].Query != "What is quantum computing?" || second[0].Sources[0] != "MIT Technology Review" {
		t.Fatalf("static seeds were mutated through a returned slice: %+v", second[0])
	}
}

func TestNewDatabase(t *testing.T) {
	ctx := context.Background()

	for _, typ := range []string{TypeStatic, TypeSQLite} {
		ds, err := NewDatabase(ctx, typ, ":memory:")
		if err != nil {
			t.Fatalf("NewDatabase(%q) error: %v", typ, err)
		}
		images, err := ds.ImageRecords(ctx)
		if err != nil || len(images) != 2 {
			t.Errorf("NewDatabase(%q) images = %v, err = %v", typ, images, err)
		}
		_ = ds.Close()
	}

	if _, err := NewDatabase(ctx, "postgres", ""); err == nil {
		t.Fatal("expected error for unsupported database driver")
	}
}
