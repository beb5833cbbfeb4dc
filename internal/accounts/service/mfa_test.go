package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func currentCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

func enrollAndActivate(t *testing.T, auth *AuthService, userID string) (secret string, backupCodes []string) {
	t.Helper()
	ctx := context.Background()

	secret, otpauthURL, err := auth.MFA.Enroll(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	require.Contains(t, otpauthURL, "otpauth://totp/")

	backupCodes, err = auth.MFA.Activate(ctx, userID, currentCode(t, secret))
	require.NoError(t, err)
	return secret, backupCodes
}

func TestEnrollDoesNotEnforceMFAUntilActivated(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	_, _, err := auth.MFA.Enroll(ctx, user.ID)
	require.NoError(t, err)

	// Login without a code still succeeds while the secret is pending
	_, _, err = auth.Login(ctx, "alice", "Secret123", "")
	require.NoError(t, err)
}

func TestActivateEnablesMFAAndMintsBackupCodes(t *testing.T) {
	st, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	_, codes := enrollAndActivate(t, auth, user.ID)
	require.Len(t, codes, backupCodeCount)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, stored.MFAActive())

	// Raw codes are never stored
	count, err := st.BackupCodes().CountBackupCodes(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, backupCodeCount, count)
}

func TestActivateRejectsBadCode(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	_, _, err := auth.MFA.Enroll(ctx, user.ID)
	require.NoError(t, err)

	_, err = auth.MFA.Activate(ctx, user.ID, "000000")
	requireFieldError(t, err, "code")
}

func TestActivateWithoutEnrollment(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)

	_, err := auth.MFA.Activate(context.Background(), user.ID, "123456")
	require.ErrorIs(t, err, ErrMFANotEnrolled)
}

func TestLoginRequiresCodeOnceMFAActive(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	secret, _ := enrollAndActivate(t, auth, user.ID)

	// Missing code is flagged on the otp_code field
	_, _, err := auth.Login(ctx, "alice", "Secret123", "")
	requireFieldError(t, err, "otp_code")

	// Wrong code fails on the same field
	_, _, err = auth.Login(ctx, "alice", "Secret123", "000000")
	requireFieldError(t, err, "otp_code")

	// Current code succeeds
	_, _, err = auth.Login(ctx, "alice", "Secret123", currentCode(t, secret))
	require.NoError(t, err)
}

func TestBackupCodeIsSingleUse(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	_, codes := enrollAndActivate(t, auth, user.ID)

	_, _, err := auth.Login(ctx, "alice", "Secret123", codes[0])
	require.NoError(t, err)

	// The spent code no longer works
	_, _, err = auth.Login(ctx, "alice", "Secret123", codes[0])
	requireFieldError(t, err, "otp_code")

	// A different one still does
	_, _, err = auth.Login(ctx, "alice", "Secret123", codes[1])
	require.NoError(t, err)
}

func TestRegenerateBackupCodesInvalidatesOldSet(t *testing.T) {
	_, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	_, oldCodes := enrollAndActivate(t, auth, user.ID)

	newCodes, err := auth.MFA.RegenerateBackupCodes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, newCodes, backupCodeCount)
	require.NotEqual(t, oldCodes, newCodes)

	_, _, err = auth.Login(ctx, "alice", "Secret123", oldCodes[0])
	requireFieldError(t, err, "otp_code")

	_, _, err = auth.Login(ctx, "alice", "Secret123", newCodes[0])
	require.NoError(t, err)
}

func TestDisableRemovesEnrollment(t *testing.T) {
	st, auth := newTestServices(t)
	user, _ := mustRegister(t, auth)
	ctx := context.Background()

	enrollAndActivate(t, auth, user.ID)
	require.NoError(t, auth.MFA.Disable(ctx, user.ID))

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, stored.MFAActive())

	count, err := st.BackupCodes().CountBackupCodes(ctx, user.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	// Login is back to password-only
	_, _, err = auth.Login(ctx, "alice", "Secret123", "")
	require.NoError(t, err)
}
