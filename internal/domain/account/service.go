package account

import (
	"context"
	"errors"
	"strings"
)

// MaxRecentSearches limita la lista MRU de términos buscados.
const MaxRecentSearches = 5

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Preferences(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidInput
	}
	return s.repo.GetPreferences(ctx, userID)
}

func (s *Service) SavePreferences(ctx context.Context, userID, text string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.repo.SavePreferences(ctx, userID, text)
}

func (s *Service) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.RecentSearches(ctx, userID)
}

// RecordSearch inserta el término al frente de la lista MRU:
// dedup contra entradas viejas, tope en MaxRecentSearches.
// Términos vacíos se ignoran sin error.
func (s *Service) RecordSearch(ctx context.Context, userID, term string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	current, err := s.repo.RecentSearches(ctx, userID)
	if err != nil {
		return err
	}

	next := make([]string, 0, MaxRecentSearches)
	next = append(next, term)
	for _, t := range current {
		if strings.EqualFold(t, term) {
			continue
		}
		next = append(next, t)
		if len(next) == MaxRecentSearches {
			break
		}
	}

	return s.repo.SaveRecentSearches(ctx, userID, next)
}
