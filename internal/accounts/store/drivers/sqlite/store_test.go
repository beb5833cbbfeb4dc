package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/store"
	"github.com/campuskit/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(username, email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		FirstName:    "Test",
		LastName:     "User",
		Active:       true,
	}
}

func TestCreateUserAndRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	dob := time.Date(2000, 5, 17, 0, 0, 0, 0, time.UTC)
	user := testUser("alice", "alice@example.edu")
	user.University = "Example University"
	user.BloodGroup = "O+"
	user.Gender = "F"
	user.DateOfBirth = &dob

	require.NoError(t, st.Users().CreateUser(ctx, user))

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Username, got.Username)
	require.Equal(t, user.Email, got.Email)
	require.Equal(t, "O+", got.BloodGroup)
	require.NotNil(t, got.DateOfBirth)
	require.Equal(t, "2000-05-17", got.DateOfBirth.Format("2006-01-02"))
	require.False(t, got.CreatedAt.IsZero())

	byEmail, err := st.Users().GetUserByEmail(ctx, "alice@example.edu")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	byUsername, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, byUsername.ID)
}

func TestCreateUserMapsUniqueViolations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Users().CreateUser(ctx, testUser("alice", "alice@example.edu")))

	err := st.Users().CreateUser(ctx, testUser("alice", "other@example.edu"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	err = st.Users().CreateUser(ctx, testUser("other", "alice@example.edu"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Email uniqueness ignores case
	err = st.Users().CreateUser(ctx, testUser("third", "ALICE@EXAMPLE.EDU"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEmailExistsIsCaseInsensitive(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Users().CreateUser(ctx, testUser("alice", "alice@example.edu")))

	exists, err := st.Users().EmailExists(ctx, "Alice@Example.EDU")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = st.Users().EmailExists(ctx, "free@example.edu")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestGetUserNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByEmail(ctx, "ghost@example.edu")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionTokenReplaceWithinTx(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user := testUser("alice", "alice@example.edu")
	require.NoError(t, st.Users().CreateUser(ctx, user))

	first := domain.SessionToken{ID: idx.New().String(), UserID: user.ID, TokenHash: "hash-1"}
	require.NoError(t, st.SessionTokens().CreateSessionToken(ctx, first))

	// Delete-then-insert in one transaction is the replace primitive
	second := domain.SessionToken{ID: idx.New().String(), UserID: user.ID, TokenHash: "hash-2"}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.SessionTokens().DeleteSessionTokensByUser(ctx, user.ID); err != nil {
			return err
		}
		return tx.SessionTokens().CreateSessionToken(ctx, second)
	})
	require.NoError(t, err)

	_, err = st.SessionTokens().GetSessionTokenByHash(ctx, "hash-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.SessionTokens().GetSessionTokenByHash(ctx, "hash-2")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.UserID)
}

func TestSecondTokenForUserViolatesConstraint(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user := testUser("alice", "alice@example.edu")
	require.NoError(t, st.Users().CreateUser(ctx, user))

	first := domain.SessionToken{ID: idx.New().String(), UserID: user.ID, TokenHash: "hash-1"}
	require.NoError(t, st.SessionTokens().CreateSessionToken(ctx, first))

	second := domain.SessionToken{ID: idx.New().String(), UserID: user.ID, TokenHash: "hash-2"}
	err := st.SessionTokens().CreateSessionToken(ctx, second)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestDeleteSessionTokenIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SessionTokens().DeleteSessionTokenByHash(ctx, "missing"))
	require.NoError(t, st.SessionTokens().DeleteSessionTokensByUser(ctx, idx.New().String()))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user := testUser("alice", "alice@example.edu")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		// Duplicate insert fails and must undo the first
		return tx.Users().CreateUser(ctx, testUser("alice", "other@example.edu"))
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = st.Users().GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestConsumeBackupCode(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user := testUser("alice", "alice@example.edu")
	require.NoError(t, st.Users().CreateUser(ctx, user))
	require.NoError(t, st.BackupCodes().CreateBackupCode(ctx, user.ID, "code-hash"))

	spent, err := st.BackupCodes().ConsumeBackupCode(ctx, user.ID, "code-hash")
	require.NoError(t, err)
	require.True(t, spent)

	spent, err = st.BackupCodes().ConsumeBackupCode(ctx, user.ID, "code-hash")
	require.NoError(t, err)
	require.False(t, spent)
}

func TestUpdateProfilePartialSet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user := testUser("alice", "alice@example.edu")
	user.University = "Example University"
	require.NoError(t, st.Users().CreateUser(ctx, user))

	uni := "Other University"
	require.NoError(t, st.Users().UpdateProfile(ctx, user.ID, domain.ProfileUpdate{University: &uni}))

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Other University", got.University)
	require.Equal(t, "Test", got.FirstName)
}
