package sqlite

import (
	"context"
	"time"

	"github.com/campuskit/accounts/internal/accounts/domain"
)

type sessionTokensRepo struct {
	db dbtx
}

func (r *sessionTokensRepo) CreateSessionToken(ctx context.Context, t domain.SessionToken) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_tokens (id, user_id, token_hash, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, t.CreatedAt)
	return mapConstraint(err)
}

func (r *sessionTokensRepo) GetSessionTokenByHash(ctx context.Context, hash string) (domain.SessionToken, error) {
	var t domain.SessionToken
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, created_at FROM session_tokens WHERE token_hash = ?`, hash).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt)
	if err != nil {
		return domain.SessionToken{}, mapNotFound(err)
	}
	return t, nil
}

// Deletes are idempotent: removing an absent token is success, which is what
// makes logout safe to repeat.
func (r *sessionTokensRepo) DeleteSessionTokenByHash(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE token_hash = ?`, hash)
	return err
}

func (r *sessionTokensRepo) DeleteSessionTokensByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE user_id = ?`, userID)
	return err
}
