package domain

import "time"

// SessionToken is the stored record of an opaque bearer credential. Only the
// SHA-256 fingerprint is persisted; the raw value exists solely in the
// response that issued it.
//
// Each user owns at most one live token (UNIQUE on user_id). Issuing a new
// token replaces the old row, so a second login silently ends the first
// session.
type SessionToken struct {
	ID        string
	UserID    string
	TokenHash string // base64url SHA-256 fingerprint of the opaque value
	CreatedAt time.Time
}
