package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	UserService *service.UserService
}

// HandleGet handles GET /profile/
//
//	@Summary		Get own profile
//	@Tags			Profile
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.User		"full profile"
//	@Failure		401	{object}	map[string]string	"detail"
//	@Router			/profile/ [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
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

// HandlePatch handles PATCH /profile/
//
//	@Summary		Update own profile
//	@Description	Partial update. Absent fields are left unchanged; email and username cannot be changed here.
//	@Tags			Profile
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ProfileUpdateRequest	true	"Fields to update"
//	@Success		200		{object}	accountsdk.User					"refreshed profile"
//	@Failure		400		{object}	map[string][]string				"field to messages mapping"
//	@Failure		401		{object}	map[string]string				"detail"
//	@Router			/profile/ [patch].
func (h *ProfileHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	var req accountsdk.ProfileUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, userID, service.ProfilePatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		University:  req.University,
		BloodGroup:  req.BloodGroup,
		MobileNo:    req.MobileNo,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserPayload(user))
}
