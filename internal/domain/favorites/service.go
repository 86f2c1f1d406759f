package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]Favorite, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

// Add es idempotente: si ya existe devuelve la entrada existente.
func (s *Service) Add(ctx context.Context, userID, petID string) (Favorite, error) {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return Favorite{}, ErrInvalidInput
	}

	if existing, err := s.repo.Find(ctx, userID, petID); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return Favorite{}, err
	}

	f := Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		PetID:     petID,
		DateAdded: s.now(),
	}
	if err := s.repo.Add(ctx, f); err != nil {
		return Favorite{}, err
	}
	return f, nil
}

// Remove no falla si la entrada no existía.
func (s *Service) Remove(ctx context.Context, userID, petID string) error {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return ErrInvalidInput
	}

	err := s.repo.Remove(ctx, userID, petID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (s *Service) IsFavorited(ctx context.Context, userID, petID string) (bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(petID) == "" {
		return false, ErrInvalidInput
	}

	_, err := s.repo.Find(ctx, userID, petID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Toggle invierte la membresía y devuelve el estado resultante.
func (s *Service) Toggle(ctx context.Context, userID, petID string) (bool, error) {
	fav, err := s.IsFavorited(ctx, userID, petID)
	if err != nil {
		return false, err
	}

	if fav {
		if err := s.Remove(ctx, userID, petID); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := s.Add(ctx, userID, petID); err != nil {
		return false, err
	}
	return true, nil
}
