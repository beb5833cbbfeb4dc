package accounts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAccountLifecycle walks one account through its whole life: register,
// availability checks, re-login with token replacement, logout, and the 401
// that follows.
func TestAccountLifecycle(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	// Register issues the first token
	firstSession := registerAlice(t, client)
	firstToken := firstSession.Token()

	// The email is now taken, the username too
	exists, err := client.CheckEmail(ctx, "alice@example.edu")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = client.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, exists)

	// Logging in replaces the token
	secondSession, resp, err := client.Login(ctx, "alice@example.edu", "Secret123")
	require.NoError(t, err)
	require.Equal(t, "Login successful", resp.Message)
	require.NotEqual(t, firstToken, secondSession.Token())

	// The registration token is dead
	_, err = firstSession.Profile(ctx)
	requireAuthError(t, err, "Invalid token.")

	// The fresh one works
	profile, err := secondSession.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.edu", profile.Email)
	require.Equal(t, "2000-05-17", profile.DateOfBirth)

	// Logout kills it; a second logout still succeeds
	require.NoError(t, secondSession.Logout(ctx))
	require.NoError(t, secondSession.Logout(ctx))

	_, err = secondSession.Profile(ctx)
	requireAuthError(t, err, "Invalid token.")
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	registerAlice(t, client)

	_, resp, err := client.Login(ctx, "alice", "Secret123")
	require.NoError(t, err)
	require.Equal(t, "alice@example.edu", resp.User.Email)

	_, resp, err = client.Login(ctx, "alice@example.edu", "Secret123")
	require.NoError(t, err)
	require.Equal(t, "alice", resp.User.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	registerAlice(t, client)

	_, _, err := client.Login(ctx, "alice", "WrongPassword")
	requireFieldFlagged(t, err, "non_field_errors")

	_, _, err = client.Login(ctx, "nobody@example.edu", "Secret123")
	requireFieldFlagged(t, err, "non_field_errors")
}

func TestAnonymousRequestsAreRejected(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	// No Authorization header at all
	anonymous := client.NewSessionFromToken("")
	_, err := anonymous.Profile(ctx)
	requireAuthError(t, err, "Authentication credentials were not provided.")

	// A token that was never issued
	bogus := client.NewSessionFromToken("never-issued")
	_, err = bogus.Profile(ctx)
	requireAuthError(t, err, "Invalid token.")
}

func TestCheckAvailabilityRequiresInput(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	_, err := client.CheckEmail(ctx, "")
	requireFieldFlagged(t, err, "non_field_errors")

	_, err = client.CheckUsername(ctx, "")
	requireFieldFlagged(t, err, "non_field_errors")
}
