package http

import (
	"net/http"
	"strings"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

// AvailabilityHandler answers identity availability checks for signup forms.
type AvailabilityHandler struct {
	AuthService *service.AuthService
}

// HandleCheckEmail handles POST /check-email/
//
//	@Summary		Check email availability
//	@Description	Reports whether an account already holds the email. The check is case-insensitive.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.CheckEmailRequest	true	"Email to check"
//	@Success		200		{object}	accountsdk.ExistsResponse		"exists"
//	@Failure		400		{object}	map[string]string				"error"
//	@Router			/check-email/ [post].
func (h *AvailabilityHandler) HandleCheckEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.CheckEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Email is required"})
		return
	}

	exists, err := h.AuthService.CheckEmail(ctx, req.Email)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ExistsResponse{Exists: exists})
}

// HandleCheckUsername handles POST /check-username/
//
//	@Summary		Check username availability
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.CheckUsernameRequest	true	"Username to check"
//	@Success		200		{object}	accountsdk.ExistsResponse		"exists"
//	@Failure		400		{object}	map[string]string				"error"
//	@Router			/check-username/ [post].
func (h *AvailabilityHandler) HandleCheckUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.CheckUsernameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Username is required"})
		return
	}

	exists, err := h.AuthService.CheckUsername(ctx, req.Username)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ExistsResponse{Exists: exists})
}
