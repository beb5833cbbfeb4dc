package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

// UserInfoHandler is the read-only twin of the profile GET. Clients that only
// need to display the signed-in user hit this one.
type UserInfoHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles GET /user-info/
//
//	@Summary		Get user information
//	@Tags			Profile
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.User		"full profile"
//	@Failure		401	{object}	map[string]string	"detail"
//	@Router			/user-info/ [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserPayload(user))
}
