package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/store"
	"github.com/campuskit/accounts/pkg/cryptox"
	"github.com/campuskit/accounts/pkg/idx"
	"github.com/campuskit/accounts/pkg/slogx"
)

// AuthService orchestrates the credential lifecycle: registration, login,
// logout, password change, and availability checks. It holds its
// collaborators explicitly rather than reaching for any shared state.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
	MFA    *MFAService
}

// Register validates the input, persists the user with a hashed password,
// and issues the first session token. Duplicate identity comes back as a
// *ValidationError keyed by the colliding field.
func (s *AuthService) Register(ctx context.Context, in RegistrationInput) (domain.User, string, error) {
	dob, err := validateRegistration(in)
	if err != nil {
		return domain.User{}, "", err
	}

	// Friendly pre-checks so the common duplicate case maps to a field.
	// The database constraint remains the authority under races.
	e := newValidationError()
	if taken, err := s.Store.Users().EmailExists(ctx, in.Email); err != nil {
		return domain.User{}, "", err
	} else if taken {
		e.add("email", "A user with this email already exists.")
	}
	if taken, err := s.Store.Users().UsernameExists(ctx, in.Username); err != nil {
		return domain.User{}, "", err
	} else if taken {
		e.add("username", "A user with this username already exists.")
	}
	if err := e.orNil(); err != nil {
		return domain.User{}, "", err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		University:   strings.TrimSpace(in.University),
		BloodGroup:   in.BloodGroup,
		MobileNo:     strings.TrimSpace(in.MobileNo),
		Gender:       in.Gender,
		DateOfBirth:  dob,
		Address:      strings.TrimSpace(in.Address),
		Active:       true,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration.
			return domain.User{}, "", NewFieldError(NonFieldErrors, "A user with this identity already exists.")
		}
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Issue(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login resolves the identifier (email first, then username), verifies the
// password and, for MFA-enrolled users, the one-time code, then reissues the
// session token. Reissue invalidates any prior token for the user.
func (s *AuthService) Login(ctx context.Context, identifier, password, otpCode string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, found, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return domain.User{}, "", err
	}
	if !found {
		// Burn a verification anyway so an unknown identifier costs the
		// same as a wrong password.
		_ = cryptox.VerifyPassword(password, dummyHash())
		return domain.User{}, "", ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed: bad password", "user_id", user.ID)
		return domain.User{}, "", ErrInvalidCredentials
	}
	if !user.Active {
		log.Info("login failed: account disabled", "user_id", user.ID)
		return domain.User{}, "", ErrInvalidCredentials
	}

	if user.MFAActive() {
		if otpCode == "" {
			return domain.User{}, "", NewFieldError("otp_code", "This field is required.")
		}
		if err := s.MFA.VerifyLoginCode(ctx, user, otpCode); err != nil {
			log.Info("login failed: bad one-time code", "user_id", user.ID)
			return domain.User{}, "", NewFieldError("otp_code", "Invalid one-time code.")
		}
	}

	token, err := s.Tokens.Issue(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID); err != nil {
		// Cosmetic timestamp; the login itself already succeeded.
		log.Warn("failed to stamp last login", "user_id", user.ID, "err", err)
	}

	log.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Logout revokes the presented token. Missing token rows are success, so
// repeating a logout (or racing one against a token replace) is harmless.
func (s *AuthService) Logout(ctx context.Context, opaque string) error {
	return s.Tokens.Revoke(ctx, opaque)
}

// ChangePassword verifies the old password, stores the new digest, and
// issues a replacement token. The old token dies with the reissue whether or
// not a token row existed (the lazily-recreated case).
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, newPasswordConfirm string) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	e := newValidationError()
	if cryptox.VerifyPassword(oldPassword, user.PasswordHash) != nil {
		e.add("old_password", "Wrong password.")
	}
	validatePasswordPair(e, "new_password", newPassword, "new_password_confirm", newPasswordConfirm)
	if e.empty() && newPassword == oldPassword {
		e.add("new_password", "New password must differ from the old password.")
	}
	if err := e.orNil(); err != nil {
		return "", err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return "", err
	}

	token, err := s.Tokens.Issue(ctx, userID)
	if err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("password changed", "user_id", userID)
	return token, nil
}

// CheckEmail reports whether any account holds the email.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.Store.Users().EmailExists(ctx, email)
}

// CheckUsername reports whether any account holds the username.
func (s *AuthService) CheckUsername(ctx context.Context, username string) (bool, error) {
	return s.Store.Users().UsernameExists(ctx, username)
}

// findByIdentifier tries the identifier as an email, then as a username.
// The boolean makes "not found" explicit instead of overloading an error.
func (s *AuthService) findByIdentifier(ctx context.Context, identifier string) (domain.User, bool, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.User{}, false, nil
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, identifier)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, err
	}

	user, err = s.Store.Users().GetUserByUsername(ctx, identifier)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, err
	}
	return domain.User{}, false, nil
}

// dummyHash lazily builds a valid argon2id digest of an unguessable value,
// used to keep unknown-identifier logins from returning measurably faster
// than known ones. Lazy so the pepper path is configured before first use.
var dummyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword(cryptox.MustGenerateToken(cryptox.TokenSize128))
	if err != nil {
		panic(err)
	}
	return h
})
