package favorites_test

import (
	"context"
	"testing"

	mem "pawsitive/internal/adapters/storage/memory"
	"pawsitive/internal/domain/favorites"
)

func TestAdd_Idempotent(t *testing.T) {
	svc := favorites.NewService(mem.NewFavoritesRepo())
	ctx := context.Background()

	first, err := svc.Add(ctx, "user-1", "pet-1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	second, err := svc.Add(ctx, "user-1", "pet-1")
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same entry on repeated add, got %q vs %q", second.ID, first.ID)
	}

	items, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly 1 favorite, got %d", len(items))
	}

	if err := svc.Remove(ctx, "user-1", "pet-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	items, _ = svc.List(ctx, "user-1")
	if len(items) != 0 {
		t.Fatalf("expected 0 favorites after remove, got %d", len(items))
	}
}

func TestRemove_MissingIsNoop(t *testing.T) {
	svc := favorites.NewService(mem.NewFavoritesRepo())

	if err := svc.Remove(context.Background(), "user-1", "never-added"); err != nil {
		t.Fatalf("remove of missing entry should be a no-op, got %v", err)
	}
}

func TestToggle(t *testing.T) {
	svc := favorites.NewService(mem.NewFavoritesRepo())
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "user-1", "pet-1")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on {
		t.Fatal("expected toggle to report favorited=true")
	}

	off, err := svc.Toggle(ctx, "user-1", "pet-1")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off {
		t.Fatal("expected toggle to report favorited=false")
	}

	fav, err := svc.IsFavorited(ctx, "user-1", "pet-1")
	if err != nil {
		t.Fatalf("is favorited: %v", err)
	}
	if fav {
		t.Fatal("expected membership false after double toggle")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	svc := favorites.NewService(mem.NewFavoritesRepo())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "user-1", "pet-1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	fav, err := svc.IsFavorited(ctx, "user-2", "pet-1")
	if err != nil {
		t.Fatalf("is favorited: %v", err)
	}
	if fav {
		t.Fatal("favorites leaked across users")
	}
}
