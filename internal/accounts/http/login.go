package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /login/
//
//	@Summary		Log in
//	@Description	Authenticates by email or username plus password and reissues the session token. Any previously issued token for the account stops working.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	accountsdk.AuthResponse	"message, user, token"
//	@Failure		400		{object}	map[string][]string		"field to messages mapping"
//	@Router			/login/ [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.EmailOrUsername, req.Password, req.OTPCode)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AuthResponse{
		Message: "Login successful",
		User:    toUserPayload(user),
		Token:   token,
	})
}
