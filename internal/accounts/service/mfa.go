package service

import (
	"context"
	"strings"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/store"
	"github.com/campuskit/accounts/pkg/cryptox"
	"github.com/campuskit/accounts/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

const backupCodeCount = 8

// MFAService manages optional TOTP enrollment. Enrollment is two-phase:
// Enroll stores a pending secret, Activate proves possession with a first
// valid code and flips the account to MFA-required at login.
type MFAService struct {
	Store  store.Store
	Issuer string // otpauth issuer label shown by authenticator apps
}

// Enroll generates a fresh TOTP secret for the user and stores it as
// pending. Re-enrolling before activation simply replaces the secret.
func (s *MFAService) Enroll(ctx context.Context, userID string) (secret, otpauthURL string, err error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if user.MFAActive() {
		return "", "", NewFieldError(NonFieldErrors, "Two-factor authentication is already enabled.")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return "", "", err
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

// Activate verifies a code against the pending secret, enables MFA, and
// returns the one-time backup codes. The raw codes exist only in this return
// value; the store keeps fingerprints.
func (s *MFAService) Activate(ctx context.Context, userID, code string) ([]string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return nil, ErrMFANotEnrolled
	}
	if user.MFAActive() {
		return nil, NewFieldError(NonFieldErrors, "Two-factor authentication is already enabled.")
	}

	if !totp.Validate(strings.TrimSpace(code), *user.MFASecret) {
		return nil, NewFieldError("code", "Invalid one-time code.")
	}

	codes, err := s.mintBackupCodes(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Users().EnableMFA(ctx, userID); err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("mfa enabled", "user_id", userID)
	return codes, nil
}

// Disable removes the enrollment and all backup codes.
func (s *MFAService) Disable(ctx context.Context, userID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().DisableMFA(ctx, userID); err != nil {
			return err
		}
		return tx.BackupCodes().DeleteAllBackupCodes(ctx, userID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("mfa disabled", "user_id", userID)
	return nil
}

// RegenerateBackupCodes replaces any remaining codes with a fresh set.
func (s *MFAService) RegenerateBackupCodes(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.MFAActive() {
		return nil, ErrMFANotEnrolled
	}
	return s.mintBackupCodes(ctx, userID)
}

// VerifyLoginCode accepts either a current TOTP code or an unused backup
// code, consuming the latter.
func (s *MFAService) VerifyLoginCode(ctx context.Context, user domain.User, code string) error {
	code = strings.TrimSpace(code)

	if user.MFASecret != nil && totp.Validate(code, *user.MFASecret) {
		return nil
	}

	spent, err := s.Store.BackupCodes().ConsumeBackupCode(ctx, user.ID, cryptox.FingerprintToken(code))
	if err != nil {
		return err
	}
	if !spent {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *MFAService) mintBackupCodes(ctx context.Context, userID string) ([]string, error) {
	codes := make([]string, 0, backupCodeCount)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, userID); err != nil {
			return err
		}
		for range backupCodeCount {
			code, err := cryptox.GenerateToken(10)
			if err != nil {
				return err
			}
			if err := tx.BackupCodes().CreateBackupCode(ctx, userID, cryptox.FingerprintToken(code)); err != nil {
				return err
			}
			codes = append(codes, code)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}
