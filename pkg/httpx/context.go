package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated user's id.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyToken holds the raw bearer token the request authenticated with.
	// Logout and password change revoke exactly this token.
	CtxKeyToken ctxKey = "token"
)

// UserIDFromCtx returns the authenticated user id, or "" when the request is
// anonymous.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// TokenFromCtx returns the raw bearer token the request presented, or "".
func TokenFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyToken).(string); ok {
		return v
	}
	return ""
}
