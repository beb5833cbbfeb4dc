package http

import (
	"net/http"

	"github.com/campuskit/accounts/internal/accounts/service"
	"github.com/campuskit/accounts/pkg/accountsdk"
	"github.com/campuskit/accounts/pkg/httpx"
	"github.com/campuskit/accounts/pkg/slogx"
)

// MFAHandler handles TOTP enrollment and backup code management.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /mfa/enroll/
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a pending TOTP secret. MFA is not enforced until a first code is verified via the activate endpoint.
//	@Tags			MFA
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.MFAEnrollResponse	"secret and otpauth URL"
//	@Failure		400	{object}	map[string][]string				"field to messages mapping"
//	@Failure		401	{object}	map[string]string				"detail"
//	@Router			/mfa/enroll/ [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	secret, otpauthURL, err := h.MFAService.Enroll(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MFAEnrollResponse{
		Secret:     secret,
		OTPAuthURL: otpauthURL,
	})
}

// HandleActivate handles POST /mfa/activate/
//
//	@Summary		Activate TOTP MFA
//	@Description	Verifies a first code against the pending secret and turns MFA on. Returns backup codes; they are shown exactly once.
//	@Tags			MFA
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.MFAVerifyRequest			true	"TOTP code"
//	@Success		200		{object}	accountsdk.MFABackupCodesResponse	"message, backup_codes"
//	@Failure		400		{object}	map[string][]string					"field to messages mapping"
//	@Failure		401		{object}	map[string]string					"detail"
//	@Router			/mfa/activate/ [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	var req accountsdk.MFAVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	codes, err := h.MFAService.Activate(ctx, userID, req.Code)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MFABackupCodesResponse{
		Message:     "Two-factor authentication enabled",
		BackupCodes: codes,
	})
}

// HandleDisable handles POST /mfa/disable/
//
//	@Summary		Disable TOTP MFA
//	@Tags			MFA
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.MessageResponse	"message"
//	@Failure		401	{object}	map[string]string			"detail"
//	@Router			/mfa/disable/ [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	if err := h.MFAService.Disable(ctx, userID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: "Two-factor authentication disabled",
	})
}

// HandleRegenerateBackupCodes handles POST /mfa/backup-codes/
//
//	@Summary		Regenerate backup codes
//	@Description	Discards any unused backup codes and mints a fresh set.
//	@Tags			MFA
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.MFABackupCodesResponse	"message, backup_codes"
//	@Failure		400	{object}	map[string][]string					"field to messages mapping"
//	@Failure		401	{object}	map[string]string					"detail"
//	@Router			/mfa/backup-codes/ [post].
func (h *MFAHandler) HandleRegenerateBackupCodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromCtx(r)
	if !ok {
		writeServiceError(w, log, service.ErrInvalidToken)
		return
	}

	codes, err := h.MFAService.RegenerateBackupCodes(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MFABackupCodesResponse{
		Message:     "Backup codes regenerated",
		BackupCodes: codes,
	})
}
