package accountsdk

import (
	"context"
	"net/http"
)

// EnrollTOTP starts TOTP enrollment, returning the pending secret and the
// otpauth:// URL. MFA is not enforced until ActivateTOTP succeeds.
func (s *Session) EnrollTOTP(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/mfa/enroll/", nil)
	if err != nil {
		return nil, err
	}

	var out MFAEnrollResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivateTOTP proves possession of the enrolled secret with a first valid
// code. On success MFA is enforced at login and the returned backup codes are
// the only copy that will ever exist.
func (s *Session) ActivateTOTP(ctx context.Context, code string) (*MFABackupCodesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/mfa/activate/", MFAVerifyRequest{Code: code})
	if err != nil {
		return nil, err
	}

	var out MFABackupCodesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DisableTOTP removes the enrollment and all backup codes.
func (s *Session) DisableTOTP(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/mfa/disable/", nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// RegenerateBackupCodes discards any unused backup codes and mints a new set.
func (s *Session) RegenerateBackupCodes(ctx context.Context) (*MFABackupCodesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/mfa/backup-codes/", nil)
	if err != nil {
		return nil, err
	}

	var out MFABackupCodesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
