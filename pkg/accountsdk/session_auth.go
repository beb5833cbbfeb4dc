package accountsdk

import (
	"context"
	"net/http"
)

// Logout revokes the session token. Logging out twice is not an error; the
// second call finds nothing to revoke and still succeeds.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/logout/", nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ChangePassword rotates the password and swaps the session over to the
// replacement token. The token the request was made with is dead on return.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword, newPasswordConfirm string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/change-password/", ChangePasswordRequest{
		OldPassword:        oldPassword,
		NewPassword:        newPassword,
		NewPasswordConfirm: newPasswordConfirm,
	})
	if err != nil {
		return err
	}

	var out ChangePasswordResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return err
	}

	s.setToken(out.Token)
	return nil
}
