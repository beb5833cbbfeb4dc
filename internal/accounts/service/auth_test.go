package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesTokenAndHashesPassword(t *testing.T) {
	st, auth := newTestServices(t)
	ctx := context.Background()

	user, token := mustRegister(t, auth)

	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.True(t, user.Active)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, "Secret123", stored.PasswordHash)
	require.Contains(t, stored.PasswordHash, "$argon2id$")

	// The issued token authenticates immediately
	userID, err := auth.Tokens.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestRegisterRejectsDuplicateEmailCaseInsensitively(t *testing.T) {
	_, auth := newTestServices(t)
	mustRegister(t, auth)

	in := validRegistration()
	in.Username = "alice2"
	in.Email = "ALICE@example.edu"
	_, _, err := auth.Register(context.Background(), in)
	requireFieldError(t, err, "email")
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	_, auth := newTestServices(t)
	mustRegister(t, auth)

	in := validRegistration()
	in.Email = "other@example.edu"
	_, _, err := auth.Register(context.Background(), in)
	requireFieldError(t, err, "username")
}

func TestRegisterCollectsAllValidationProblems(t *testing.T) {
	_, auth := newTestServices(t)

	_, _, err := auth.Register(context.Background(), RegistrationInput{
		Username:        "",
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
		BloodGroup:      "Z+",
		Gender:          "X",
		DateOfBirth:     "17/05/2000",
	})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	for _, field := range []string{
		"username", "email", "password", "password_confirm",
		"first_name", "last_name", "blood_group", "gender", "date_of_birth",
	} {
		require.Contains(t, ve.Fields, field)
	}
}

func TestLoginAcceptsEmailOrUsername(t *testing.T) {
	_, auth := newTestServices(t)
	registered, _ := mustRegister(t, auth)
	ctx := context.Background()

	byEmail, _, err := auth.Login(ctx, "alice@example.edu", "Secret123", "")
	require.NoError(t, err)
	require.Equal(t, registered.ID, byEmail.ID)

	byUsername, _, err := auth.Login(ctx, "alice", "Secret123", "")
	require.NoError(t, err)
	require.Equal(t, registered.ID, byUsername.ID)
}

func TestLoginReplacesToken(t *testing.T) {
	_, auth := newTestServices(t)
	user, firstToken := mustRegister(t, auth)
	ctx := context.Background()

	_, secondToken, err := auth.Login(ctx, "alice", "Secret123", "")
	require.NoError(t, err)
	require.NotEqual(t, firstToken, secondToken)

	// The old token is dead, the new one works
	_, err = auth.Tokens.Authenticate(ctx, firstToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	userID, err := auth.Tokens.Authenticate(ctx, secondToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	st, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	_, _, err := auth.Login(ctx, "nobody@example.edu", "Secret123", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "alice", "WrongPassword", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, st.Users().SetActive(ctx, user.ID, false))
	_, _, err = auth.Login(ctx, "alice", "Secret123", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStampsLastLogin(t *testing.T) {
	st, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	before, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, before.LastLoginAt)

	_, _, err = auth.Login(ctx, "alice", "Secret123", "")
	require.NoError(t, err)

	after, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastLoginAt)
}

func TestLogoutIsIdempotent(t *testing.T) {
	_, auth := newTestServices(t)
	_, token := mustRegister(t, auth)
	ctx := context.Background()

	require.NoError(t, auth.Logout(ctx, token))
	require.NoError(t, auth.Logout(ctx, token))

	_, err := auth.Tokens.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePasswordRotatesCredentialAndToken(t *testing.T) {
	_, auth := newTestServices(t)
	user, oldToken := mustRegister(t, auth)
	ctx := context.Background()

	newToken, err := auth.ChangePassword(ctx, user.ID, "Secret123", "Newsecret456", "Newsecret456")
	require.NoError(t, err)
	require.NotEqual(t, oldToken, newToken)

	_, err = auth.Tokens.Authenticate(ctx, oldToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Old password no longer logs in, new one does
	_, _, err = auth.Login(ctx, "alice", "Secret123", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = auth.Login(ctx, "alice", "Newsecret456", "")
	require.NoError(t, err)
}

func TestChangePasswordValidation(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	t.Run("wrong old password", func(t *testing.T) {
		_, err := auth.ChangePassword(ctx, user.ID, "WrongOld", "Newsecret456", "Newsecret456")
		requireFieldError(t, err, "old_password")
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		_, err := auth.ChangePassword(ctx, user.ID, "Secret123", "Newsecret456", "Other")
		requireFieldError(t, err, "new_password_confirm")
	})

	t.Run("too short", func(t *testing.T) {
		_, err := auth.ChangePassword(ctx, user.ID, "Secret123", "short", "short")
		requireFieldError(t, err, "new_password")
	})

	t.Run("same as old", func(t *testing.T) {
		_, err := auth.ChangePassword(ctx, user.ID, "Secret123", "Secret123", "Secret123")
		requireFieldError(t, err, "new_password")
	})
}

func TestAvailabilityChecks(t *testing.T) {
	_, auth := newTestServices(t)
	mustRegister(t, auth)
	ctx := context.Background()

	exists, err := auth.CheckEmail(ctx, "alice@example.edu")
	require.NoError(t, err)
	require.True(t, exists)

	// Case-insensitive match
	exists, err = auth.CheckEmail(ctx, "Alice@Example.EDU")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = auth.CheckEmail(ctx, "free@example.edu")
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = auth.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = auth.CheckUsername(ctx, "bob")
	require.NoError(t, err)
	require.False(t, exists)
}
