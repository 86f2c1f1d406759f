package memory

import (
	"context"
	"sync"

	"pawsitive/internal/domain/account"
)

type accountRepo struct {
	mu       sync.RWMutex
	prefs    map[string]string
	searches map[string][]string
}

func NewAccountRepo() account.Repository {
	return &accountRepo{
		prefs:    make(map[string]string),
		searches: make(map[string][]string),
	}
}

func (r *accountRepo) GetPreferences(ctx context.Context, userID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefs[userID], nil
}

func (r *accountRepo) SavePreferences(ctx context.Context, userID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[userID] = text
	return nil
}

func (r *accountRepo) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// el caller puede mutar el slice; devolvemos copia
	terms := r.searches[userID]
	out := make([]string, len(terms))
	copy(out, terms)
	return out, nil
}

func (r *accountRepo) SaveRecentSearches(ctx context.Context, userID string, terms []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]string, len(terms))
	copy(cp, terms)
	r.searches[userID] = cp
	return nil
}
