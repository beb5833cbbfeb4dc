package domain

import "time"

// User is the persisted account record. Email and username are each globally
// unique (email case-insensitively) and immutable through the profile-update
// path. The password is only ever held as an argon2id digest.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id PHC encoded

	FirstName   string
	LastName    string
	University  string
	BloodGroup  string // one of BloodGroups, or ""
	MobileNo    string
	Gender      string // one of Genders, or ""
	DateOfBirth *time.Time
	Address     string

	Active bool

	MFAEnabled *time.Time // set when TOTP was activated (nullable)
	MFASecret  *string    // base32 TOTP secret (nullable)

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// MFAActive reports whether the user has completed TOTP enrollment.
func (u User) MFAActive() bool {
	return u.MFAEnabled != nil && u.MFASecret != nil && *u.MFASecret != ""
}

// ProfileUpdate carries a partial profile mutation; nil fields are left
// unchanged. Identity fields (email, username) are deliberately absent.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	University  *string
	BloodGroup  *string
	MobileNo    *string
	Gender      *string
	DateOfBirth *time.Time
	Address     *string
}
