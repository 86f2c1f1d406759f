package favorites

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("favorite not found")

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Find(ctx context.Context, userID, petID string) (Favorite, error)
	Add(ctx context.Context, f Favorite) error
	Remove(ctx context.Context, userID, petID string) error
}
