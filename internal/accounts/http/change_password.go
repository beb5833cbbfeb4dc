package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /change-password/
//
//	@Summary		Change password
//	@Description	Verifies the old password, stores the new one, and returns a replacement token. The token this request authenticated with is revoked.
//	@Tags			Auth
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ChangePasswordRequest	true	"Old and new passwords"
//	@Success		200		{object}	accountsdk.ChangePasswordResponse	"message, token"
//	@Failure		400		{object}	map[string][]string					"field to messages mapping"
//	@Failure		401		{object}	map[string]string					"detail"
//	@Router			/change-password/ [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	var req accountsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	token, err := h.AuthService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ChangePasswordResponse{
		Message: "Password changed successfully",
		Token:   token,
	})
}
