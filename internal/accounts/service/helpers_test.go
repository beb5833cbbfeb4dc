package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/store"
	"github.com/campuskit/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/campuskit/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	path := filepath.Join(os.TempDir(), "accounts-service-test-pepper")
	cryptox.SetPepperPath(path)
	os.Remove(path)
	defer os.Remove(path)

	os.Exit(m.Run())
}

// newTestServices wires the full service stack on an in-memory database.
func newTestServices(t *testing.T) (store.Store, *AuthService) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	tokens := &TokenService{Store: st}
	mfa := &MFAService{Store: st, Issuer: "accounts-test"}
	auth := &AuthService{Store: st, Tokens: tokens, MFA: mfa}
	return st, auth
}

// validRegistration returns a registration that passes every check.
func validRegistration() RegistrationInput {
	return RegistrationInput{
		Username:        "alice",
		Email:           "alice@example.edu",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
		FirstName:       "Alice",
		LastName:        "Nguyen",
		University:      "Example University",
		BloodGroup:      "O+",
		MobileNo:        "01700000000",
		Gender:          "F",
		DateOfBirth:     "2000-05-17",
		Address:         "12 Campus Road",
	}
}

// mustRegister registers the default user and returns it with its token.
func mustRegister(t *testing.T, auth *AuthService) (domain.User, string) {
	t.Helper()
	user, token, err := auth.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user, token
}

// requireFieldError asserts err is a ValidationError flagging exactly field.
func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.Contains(t, ve.Fields, field)
}
