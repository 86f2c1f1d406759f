package account

import "context"

// Repository persiste el estado por-usuario que el front original
// guardaba en local storage: preferencias de texto libre y búsquedas
// recientes. Storage caído o vacío => valores vacíos, nunca error fatal.
type Repository interface {
	GetPreferences(ctx context.Context, userID string) (string, error)
	SavePreferences(ctx context.Context, userID, text string) error

	RecentSearches(ctx context.Context, userID string) ([]string, error)
	SaveRecentSearches(ctx context.Context, userID string, terms []string) error
}
