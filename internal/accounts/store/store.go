package store

import (
	"context"
	"errors"

	"github.com/campuskit/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and let tests swap a
// single repo. Uniqueness of email/username and the one-token-per-user rule
// are enforced by database constraints, not application pre-checks, so they
// hold under concurrent requests.
type Store interface {
	Users() Users
	SessionTokens() SessionTokens
	BackupCodes() BackupCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction scoped Store. The caller MUST call
	// Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing on nil and rolling
	// back on error. Preferred over Tx for multi-step operations like the
	// token replace on login.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername looks a user up by exact username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail looks a user up by email, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is app-side ULID). Returns
	// ErrAlreadyExists when the email or username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// EmailExists reports whether any user has the email (case-insensitive).
	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameExists reports whether any user has the username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// UpdateProfile applies a partial profile mutation and bumps updated_at.
	UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error

	// UpdatePasswordHash sets the password digest and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateLastLogin stamps last_login_at.
	UpdateLastLogin(ctx context.Context, userID string) error

	// SetActive flips the active flag; deactivation is the only removal
	// path in API scope.
	SetActive(ctx context.Context, userID string, active bool) error

	// UpdateMFASecret sets (or clears, with "") the TOTP secret.
	UpdateMFASecret(ctx context.Context, userID string, secret string) error

	// EnableMFA stamps mfa_enabled.
	EnableMFA(ctx context.Context, userID string) error

	// DisableMFA clears mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, userID string) error
}

type SessionTokens interface {
	// CreateSessionToken inserts the token row. UNIQUE(user_id) backstops
	// the single-active-token invariant.
	CreateSessionToken(ctx context.Context, t domain.SessionToken) error

	// GetSessionTokenByHash fetches a token by its fingerprint.
	GetSessionTokenByHash(ctx context.Context, hash string) (domain.SessionToken, error)

	// DeleteSessionTokenByHash removes the token if present; deleting a
	// missing token is not an error.
	DeleteSessionTokenByHash(ctx context.Context, hash string) error

	// DeleteSessionTokensByUser removes the user's token if present.
	DeleteSessionTokensByUser(ctx context.Context, userID string) error
}

type BackupCodes interface {
	// CreateBackupCode stores one backup code fingerprint for a user.
	CreateBackupCode(ctx context.Context, userID string, codeHash string) error

	// ConsumeBackupCode deletes the code if it exists and reports whether it
	// did. Single atomic step so a code cannot be spent twice.
	ConsumeBackupCode(ctx context.Context, userID string, codeHash string) (bool, error)

	// DeleteAllBackupCodes clears a user's codes (regeneration, MFA removal).
	DeleteAllBackupCodes(ctx context.Context, userID string) error

	// CountBackupCodes returns how many unused codes remain.
	CountBackupCodes(ctx context.Context, userID string) (int, error)
}
