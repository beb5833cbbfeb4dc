package service

import (
	"context"
	"testing"

	"github.com/campuskit/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestIssueKeepsSingleTokenPerUser(t *testing.T) {
	st, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	tokens := auth.Tokens
	var latest string
	for range 5 {
		issued, err := tokens.Issue(ctx, user.ID)
		require.NoError(t, err)
		latest = issued
	}

	// Only the most recent token resolves
	userID, err := tokens.Authenticate(ctx, latest)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)

	// Exactly one row backs it
	record, err := st.SessionTokens().GetSessionTokenByHash(ctx, cryptox.FingerprintToken(latest))
	require.NoError(t, err)
	require.Equal(t, user.ID, record.UserID)
}

func TestAuthenticateRejectsUnknownToken(t *testing.T) {
	_, auth := newTestServices(t)

	_, err := auth.Tokens.Authenticate(context.Background(), "never-issued")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsDeactivatedAccount(t *testing.T) {
	st, auth := newTestServices(t)
	user, token := mustRegister(t, auth)
	ctx := context.Background()

	require.NoError(t, st.Users().SetActive(ctx, user.ID, false))

	// The row still exists but authentication fails immediately
	_, err := auth.Tokens.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, st.Users().SetActive(ctx, user.ID, true))
	userID, err := auth.Tokens.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestRevokeIsIdempotent(t *testing.T) {
	_, auth := newTestServices(t)
	_, token := mustRegister(t, auth)
	ctx := context.Background()

	require.NoError(t, auth.Tokens.Revoke(ctx, token))
	require.NoError(t, auth.Tokens.Revoke(ctx, token))
	require.NoError(t, auth.Tokens.Revoke(ctx, "never-issued"))
}

func TestRevokeUserClearsToken(t *testing.T) {
	_, auth := newTestServices(t)
	user, token := mustRegister(t, auth)
	ctx := context.Background()

	require.NoError(t, auth.Tokens.RevokeUser(ctx, user.ID))
	_, err := auth.Tokens.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuedTokensAreOpaqueAndUnique(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 10 {
		token, err := auth.Tokens.Issue(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}
