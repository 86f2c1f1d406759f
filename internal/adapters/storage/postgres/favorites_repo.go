package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawsitive/internal/domain/favorites"
)

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func (r *FavoritesRepo) ListByUser(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, pet_id, date_added
		FROM favorites
		WHERE user_id = $1
		ORDER BY date_added ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]favorites.Favorite, 0)
	for rows.Next() {
		var f favorites.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PetID, &f.DateAdded); err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, rows.Err()
}

func (r *FavoritesRepo) Find(ctx context.Context, userID, petID string) (favorites.Favorite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, pet_id, date_added
		FROM favorites
		WHERE user_id = $1 AND pet_id = $2
	`, userID, petID)

	var f favorites.Favorite
	if err := row.Scan(&f.ID, &f.UserID, &f.PetID, &f.DateAdded); err != nil {
		if err == sql.ErrNoRows {
			return favorites.Favorite{}, favorites.ErrNotFound
		}
		return favorites.Favorite{}, err
	}
	return f, nil
}

func (r *FavoritesRepo) Add(ctx context.Context, f favorites.Favorite) error {
	// (user_id, pet_id) es unique: el conflicto se ignora y el alta
	// queda idempotente también a nivel storage.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (id, user_id, pet_id, date_added)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, pet_id) DO NOTHING
	`,
		f.ID,
		f.UserID,
		f.PetID,
		f.DateAdded,
	)
	return err
}

func (r *FavoritesRepo) Remove(ctx context.Context, userID, petID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND pet_id = $2
	`, userID, petID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return favorites.ErrNotFound
	}
	return nil
}
