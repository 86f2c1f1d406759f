package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pawsitive/internal/domain/favorites"
)

type favoritesRepo struct {
	mu     sync.RWMutex
	byUser map[string]map[string]favorites.Favorite // userID -> petID -> entry
}

func NewFavoritesRepo() favorites.Repository {
	return &favoritesRepo{
		byUser: make(map[string]map[string]favorites.Favorite),
	}
}

func (r *favoritesRepo) ListByUser(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]favorites.Favorite, 0)
	for _, f := range r.byUser[userID] {
		out = append(out, f)
	}

	// Orden estable por fecha de alta asc (consistencia en dev/tests)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateAdded.Before(out[j].DateAdded)
	})

	return out, nil
}

func (r *favoritesRepo) Find(ctx context.Context, userID, petID string) (favorites.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byUser[userID][petID]
	if !ok {
		return favorites.Favorite{}, favorites.ErrNotFound
	}
	return f, nil
}

func (r *favoritesRepo) Add(ctx context.Context, f favorites.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.UserID) == "" || strings.TrimSpace(f.PetID) == "" {
		return favorites.ErrInvalidInput
	}

	if r.byUser[f.UserID] == nil {
		r.byUser[f.UserID] = make(map[string]favorites.Favorite)
	}
	// Si ya existía, no pisar la fecha original (idempotencia real)
	if _, exists := r.byUser[f.UserID][f.PetID]; exists {
		return nil
	}
	r.byUser[f.UserID][f.PetID] = f
	return nil
}

func (r *favoritesRepo) Remove(ctx context.Context, userID, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[userID][petID]; !ok {
		return favorites.ErrNotFound
	}
	delete(r.byUser[userID], petID)
	return nil
}
