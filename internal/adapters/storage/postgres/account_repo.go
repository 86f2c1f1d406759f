package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) GetPreferences(ctx context.Context, userID string) (string, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT preferences
		FROM account_state
		WHERE user_id = $1
	`, userID)

	var text sql.NullString
	if err := row.Scan(&text); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return text.String, nil
}

func (r *AccountRepo) SavePreferences(ctx context.Context, userID, text string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO account_state (user_id, preferences, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET preferences = EXCLUDED.preferences, updated_at = EXCLUDED.updated_at
	`, userID, text, time.Now())
	return err
}

func (r *AccountRepo) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT recent_searches
		FROM account_state
		WHERE user_id = $1
	`, userID)

	var raw sql.NullString
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}

	// recent_searches es jsonb con el array MRU
	var terms []string
	if err := json.Unmarshal([]byte(raw.String), &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *AccountRepo) SaveRecentSearches(ctx context.Context, userID string, terms []string) error {
	b, err := json.Marshal(terms)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO account_state (user_id, recent_searches, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET recent_searches = EXCLUDED.recent_searches, updated_at = EXCLUDED.updated_at
	`, userID, string(b), time.Now())
	return err
}
