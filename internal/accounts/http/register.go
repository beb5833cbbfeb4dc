package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /register/
//
//	@Summary		Register a new account
//	@Description	Creates an account and issues its first session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	accountsdk.AuthResponse		"message, user, token"
//	@Failure		400		{object}	map[string][]string			"field to messages mapping"
//	@Router			/register/ [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	user, token, err := h.AuthService.Register(ctx, service.RegistrationInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		University:      req.University,
		BloodGroup:      req.BloodGroup,
		MobileNo:        req.MobileNo,
		Gender:          req.Gender,
		DateOfBirth:     req.DateOfBirth,
		Address:         req.Address,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.AuthResponse{
		Message: "User registered successfully",
		User:    toUserPayload(user),
		Token:   token,
	})
}
