package accountsdk

import "time"

// User is the public view of an account. The password digest never appears
// here.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	University  string     `json:"university,omitempty"`
	BloodGroup  string     `json:"blood_group,omitempty"`
	MobileNo    string     `json:"mobile_no,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	DateOfBirth string     `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address     string     `json:"address,omitempty"`
	MFAEnabled  bool       `json:"mfa_enabled"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// RegisterRequest is the POST /register/ payload.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	University      string `json:"university,omitempty"`
	BloodGroup      string `json:"blood_group,omitempty"`
	MobileNo        string `json:"mobile_no,omitempty"`
	Gender          string `json:"gender,omitempty"`
	DateOfBirth     string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address         string `json:"address,omitempty"`
}

// LoginRequest is the POST /login/ payload. The identifier may be an email
// or a username; the server resolves it either way. OTPCode is only required
// for MFA-enrolled accounts.
type LoginRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
	OTPCode         string `json:"otp_code,omitempty"`
}

// AuthResponse is returned by register (201) and login (200).
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// MessageResponse is the minimal success envelope (logout).
type MessageResponse struct {
	Message string `json:"message"`
}

// ChangePasswordRequest is the POST /change-password/ payload.
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// ChangePasswordResponse carries the replacement token; the token the
// request authenticated with is dead once this arrives.
type ChangePasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ProfileUpdateRequest is the PATCH /profile/ payload. Absent fields are
// left unchanged.
type ProfileUpdateRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	University  *string `json:"university,omitempty"`
	BloodGroup  *string `json:"blood_group,omitempty"`
	MobileNo    *string `json:"mobile_no,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address     *string `json:"address,omitempty"`
}

// CheckEmailRequest is the POST /check-email/ payload.
type CheckEmailRequest struct {
	Email string `json:"email"`
}

// CheckUsernameRequest is the POST /check-username/ payload.
type CheckUsernameRequest struct {
	Username string `json:"username"`
}

// ExistsResponse answers availability checks.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// MFAEnrollResponse returns the pending TOTP secret and its otpauth:// URL
// for QR rendering.
type MFAEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// MFAVerifyRequest carries the first TOTP code proving enrollment.
type MFAVerifyRequest struct {
	Code string `json:"code"`
}

// MFABackupCodesResponse returns freshly minted one-time backup codes. They
// are shown exactly once.
type MFABackupCodesResponse struct {
	Message     string   `json:"message"`
	BackupCodes []string `json:"backup_codes"`
}

// HealthChecks itemizes dependency probes in readiness responses.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
