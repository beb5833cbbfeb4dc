package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/campuskit/accounts/internal/accounts/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, password_hash,
	first_name, last_name, university, blood_group, mobile_no, gender, date_of_birth, address,
	active, mfa_enabled, mfa_secret, created_at, updated_at, last_login_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u          domain.User
		dob        sql.NullString
		mfaEnabled sql.NullTime
		mfaSecret  sql.NullString
		lastLogin  sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.University, &u.BloodGroup, &u.MobileNo, &u.Gender, &dob, &u.Address,
		&u.Active, &mfaEnabled, &mfaSecret, &u.CreatedAt, &u.UpdatedAt, &lastLogin,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.DateOfBirth = datePtr(dob)
	u.MFAEnabled = timePtr(mfaEnabled)
	u.MFASecret = stringPtr(mfaSecret)
	u.LastLoginAt = timePtr(lastLogin)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

// GetUserByEmail relies on the COLLATE NOCASE column collation for
// case-insensitive matching.
func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, email, password_hash,
			first_name, last_name, university, blood_group, mobile_no, gender, date_of_birth, address,
			active, mfa_enabled, mfa_secret, created_at, updated_at, last_login_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.FirstName, u.LastName, u.University, u.BloodGroup, u.MobileNo, u.Gender, nullDate(u.DateOfBirth), u.Address,
		u.Active, nullTime(u.MFAEnabled), nullStringFromPtr(u.MFASecret), u.CreatedAt, u.UpdatedAt, nullTime(u.LastLoginAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE email = ?`, email).Scan(&n)
	return n > 0, err
}

func (r *usersRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE username = ?`, username).Scan(&n)
	return n > 0, err
}

// UpdateProfile builds the SET clause from the non-nil fields only, so a
// PATCH never clobbers columns the caller did not mention.
func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)

	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if p.FirstName != nil {
		set("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		set("last_name", *p.LastName)
	}
	if p.University != nil {
		set("university", *p.University)
	}
	if p.BloodGroup != nil {
		set("blood_group", *p.BloodGroup)
	}
	if p.MobileNo != nil {
		set("mobile_no", *p.MobileNo)
	}
	if p.Gender != nil {
		set("gender", *p.Gender)
	}
	if p.DateOfBirth != nil {
		set("date_of_birth", p.DateOfBirth.Format(dateOnly))
	}
	if p.Address != nil {
		set("address", *p.Address)
	}
	if len(sets) == 0 {
		return nil
	}

	set("updated_at", time.Now().UTC())
	args = append(args, userID)

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE id = ?`,
		time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) SetActive(ctx context.Context, userID string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateMFASecret(ctx context.Context, userID string, secret string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET mfa_secret = ?, updated_at = ? WHERE id = ?`,
		nullString(secret), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) EnableMFA(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET mfa_enabled = ?, updated_at = ? WHERE id = ?`,
		now, now, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) DisableMFA(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET mfa_enabled = NULL, mfa_secret = NULL, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func nullStringFromPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// requireRow maps a zero-row UPDATE to ErrNotFound so callers can tell a
// missing user apart from a no-op.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
