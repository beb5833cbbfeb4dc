package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /logout/
//
//	@Summary		Log out
//	@Description	Revokes the presented token. Logging out twice succeeds both times.
//	@Tags			Auth
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.MessageResponse	"message"
//	@Failure		401	{object}	map[string]string			"detail"
//	@Router			/logout/ [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := httpx.TokenFromCtx(ctx)
	if err := h.AuthService.Logout(ctx, token); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: "Successfully logged out",
	})
}
