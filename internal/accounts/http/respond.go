package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/internal/accounts/store"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
)

const dateOnly = "2006-01-02"

// toUserPayload maps a domain user onto the public wire shape. The password
// digest and MFA secret never leave this package.
func toUserPayload(u domain.User) accountsdk.User {
	out := accountsdk.User{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		University: u.University,
		BloodGroup: u.BloodGroup,
		MobileNo:   u.MobileNo,
		Gender:     u.Gender,
		Address:    u.Address,
		MFAEnabled: u.MFAActive(),
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLoginAt,
	}
	if u.DateOfBirth != nil {
		out.DateOfBirth = u.DateOfBirth.Format(dateOnly)
	}
	return out
}

// writeServiceError translates service-layer failures into the API's error
// bodies: validation problems become the field → messages 400, bad
// credentials become the non-field 400, anything else is a 500.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		httpx.WriteJSON(w, http.StatusBadRequest, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusBadRequest, map[string][]string{
			service.NonFieldErrors: {"Unable to log in with provided credentials."},
		})
	case errors.Is(err, service.ErrMFANotEnrolled):
		httpx.WriteJSON(w, http.StatusBadRequest, map[string][]string{
			service.NonFieldErrors: {"Two-factor authentication is not enabled."},
		})
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, store.ErrNotFound):
		// A vanished user behind a live token reads the same as a bad token.
		w.Header().Set("WWW-Authenticate", `Token`)
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
	default:
		log.Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"detail": "Internal server error.",
		})
	}
}

// writeBadJSON is the reply for an unparseable request body.
func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, map[string][]string{
		service.NonFieldErrors: {"Invalid JSON body."},
	})
}

// userIDFromCtx pulls the authenticated user id injected by AuthnMiddleware.
func userIDFromCtx(r *http.Request) (string, bool) {
	userID := httpx.UserIDFromCtx(r.Context())
	return userID, userID != ""
}
