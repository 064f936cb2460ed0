package customer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/example/hotel-reservations/internal/internaltypes"
	"github.com/example/hotel-reservations/internal/storage"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dir := t.TempDir()
	store := storage.NewFileStore(map[string]string{
		storage.Customers: filepath.Join(dir, "customers.json"),
	})
	return NewRepository(store)
}

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "C1", "Alice", "a@test.com", "555")
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "C1" || created.Name != "Alice" || created.Email != "a@test.com" || created.Phone != "555" {
		t.Fatalf("unexpected customer: %+v", created)
	}

	got, err := repo.Get(ctx, "C1")
	if err != nil {
		t.Fatal(err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestCreateDuplicate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "C1", "Alice", "a@test.com", "555"); err != nil {
		t.Fatal(err)
	}
	_, err := repo.Create(ctx, "C1", "Bob", "b@test.com", "666")
	if !errors.Is(err, internaltypes.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The original record must be untouched.
	got, err := repo.Get(ctx, "C1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Alice" {
		t.Fatalf("duplicate create overwrote record: %+v", got)
	}
}

func TestGetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "NOPE")
	if !errors.Is(err, internaltypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "C1", "Alice", "a@test.com", "555"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "C1"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(ctx, "C1"); !errors.Is(err, internaltypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Delete(context.Background(), "NOPE")
	if !errors.Is(err, internaltypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestModify(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "C1", "Alice", "a@test.com", "555"); err != nil {
		t.Fatal(err)
	}

	updated, err := repo.Modify(ctx, "C1", strPtr("Alicia"), nil, strPtr("999"))
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Alicia" || updated.Phone != "999" {
		t.Fatalf("unexpected customer after modify: %+v", updated)
	}
	if updated.Email != "a@test.com" {
		t.Fatalf("nil field should be left unchanged, got email %q", updated.Email)
	}

	got, err := repo.Get(ctx, "C1")
	if err != nil {
		t.Fatal(err)
	}
	if got != updated {
		t.Fatalf("modify not persisted: %+v vs %+v", got, updated)
	}
}

func TestModifyNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Modify(context.Background(), "NOPE", strPtr("X"), nil, nil)
	if !errors.Is(err, internaltypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no customers, got %d", len(all))
	}

	if _, err := repo.Create(ctx, "C1", "Alice", "a@test.com", "555"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, "C2", "Bob", "b@test.com", "666"); err != nil {
		t.Fatal(err)
	}

	all, err = repo.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(all))
	}
	ids := map[string]bool{}
	for _, c := range all {
		ids[c.ID] = true
	}
	if !ids["C1"] || !ids["C2"] {
		t.Fatalf("expected C1 and C2, got %v", ids)
	}
}
