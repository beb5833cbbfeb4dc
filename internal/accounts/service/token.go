package service

import (
	"context"
	"errors"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/store"
	"github.com/campuskit/accounts/pkg/cryptox"
	"github.com/campuskit/accounts/pkg/idx"
)

// TokenService owns the session token lifecycle: one opaque bearer token per
// user, replaced wholesale on every issue. The raw token value leaves this
// service exactly once, in the return value of Issue; the store only ever
// sees fingerprints.
type TokenService struct {
	Store store.Store
}

// Issue mints a fresh opaque token for userID, deleting any previous token
// in the same transaction. Two concurrent issues race harmlessly: the
// UNIQUE(user_id) constraint means at most one insert lands, and retrying
// callers get "last issued wins" semantics.
func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	record := domain.SessionToken{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(opaque),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.SessionTokens().DeleteSessionTokensByUser(ctx, userID); err != nil {
			return err
		}
		return tx.SessionTokens().CreateSessionToken(ctx, record)
	})
	if err != nil {
		return "", err
	}

	return opaque, nil
}

// Revoke deletes the session behind the raw token. Revoking a token that is
// already gone is success, which keeps logout idempotent.
func (s *TokenService) Revoke(ctx context.Context, opaque string) error {
	return s.Store.SessionTokens().DeleteSessionTokenByHash(ctx, cryptox.FingerprintToken(opaque))
}

// RevokeUser deletes whatever token the user holds, if any.
func (s *TokenService) RevokeUser(ctx context.Context, userID string) error {
	return s.Store.SessionTokens().DeleteSessionTokensByUser(ctx, userID)
}

// Authenticate resolves a raw token to its owning user id. It satisfies
// httpx.Authenticator. Deactivated accounts fail even while their token row
// still exists, so deactivation takes effect immediately.
func (s *TokenService) Authenticate(ctx context.Context, opaque string) (string, error) {
	record, err := s.Store.SessionTokens().GetSessionTokenByHash(ctx, cryptox.FingerprintToken(opaque))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	user, err := s.Store.Users().GetUserByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !user.Active {
		return "", ErrInvalidToken
	}

	return user.ID, nil
}
