package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetMissingKey(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("missing key should report ok=false")
	}
}

func TestSetOverwrites(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := db.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	in := []string{"Show A", "Show B"}
	if err := db.SetJSON(ctx, "titles", in); err != nil {
		t.Fatalf("setjson: %v", err)
	}

	var out []string
	ok, err := db.GetJSON(ctx, "titles", &out)
	if err != nil || !ok {
		t.Fatalf("getjson: ok=%v err=%v", ok, err)
	}
	if len(out) != 2 || out[0] != "Show A" || out[1] != "Show B" {
		t.Fatalf("unexpected value: %v", out)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := db.Get(ctx, "k"); ok {
		t.Fatal("key should be gone after delete")
	}
	if err := db.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting a missing key should not error: %v", err)
	}
}
