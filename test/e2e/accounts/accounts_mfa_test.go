package accounts_test

import (
	"context"
	"testing"
	"time"

	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func currentCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

func enrollAndActivate(t *testing.T, sess *accountsdk.Session) (secret string, backupCodes []string) {
	t.Helper()
	ctx := context.Background()

	enroll, err := sess.EnrollTOTP(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.Contains(t, enroll.OTPAuthURL, "otpauth://totp/")

	activated, err := sess.ActivateTOTP(ctx, currentCode(t, enroll.Secret))
	require.NoError(t, err)
	require.NotEmpty(t, activated.BackupCodes)
	return enroll.Secret, activated.BackupCodes
}

func TestMFAEnrollmentFlow(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	sess := registerAlice(t, client)

	secret, _ := enrollAndActivate(t, sess)

	profile, err := sess.Profile(ctx)
	require.NoError(t, err)
	require.True(t, profile.MFAEnabled)

	// Password alone no longer logs in
	_, _, err = client.Login(ctx, "alice", "Secret123")
	requireFieldFlagged(t, err, "otp_code")

	// Password plus a current code does
	_, resp, err := client.LoginWithOTP(ctx, "alice", "Secret123", currentCode(t, secret))
	require.NoError(t, err)
	require.True(t, resp.User.MFAEnabled)
}

func TestMFABackupCodeLogin(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	sess := registerAlice(t, client)

	_, codes := enrollAndActivate(t, sess)

	_, _, err := client.LoginWithOTP(ctx, "alice", "Secret123", codes[0])
	require.NoError(t, err)

	// Each backup code works exactly once
	_, _, err = client.LoginWithOTP(ctx, "alice", "Secret123", codes[0])
	requireFieldFlagged(t, err, "otp_code")
}

func TestMFARegenerateBackupCodes(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	sess := registerAlice(t, client)

	_, oldCodes := enrollAndActivate(t, sess)

	regenerated, err := sess.RegenerateBackupCodes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, regenerated.BackupCodes)

	_, _, err = client.LoginWithOTP(ctx, "alice", "Secret123", oldCodes[0])
	requireFieldFlagged(t, err, "otp_code")

	_, _, err = client.LoginWithOTP(ctx, "alice", "Secret123", regenerated.BackupCodes[0])
	require.NoError(t, err)
}

func TestMFADisableRestoresPasswordLogin(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	sess := registerAlice(t, client)

	enrollAndActivate(t, sess)
	require.NoError(t, sess.DisableTOTP(ctx))

	_, resp, err := client.Login(ctx, "alice", "Secret123")
	require.NoError(t, err)
	require.False(t, resp.User.MFAEnabled)
}

func TestMFAActivateRejectsWrongCode(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	sess := registerAlice(t, client)

	_, err := sess.EnrollTOTP(ctx)
	require.NoError(t, err)

	_, err = sess.ActivateTOTP(ctx, "000000")
	requireFieldFlagged(t, err, "code")
}
