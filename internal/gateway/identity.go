package gateway

import "context"

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID attaches the authenticated user id so upstream calls can be
// issued on that user's behalf. Authentication itself happens before this
// service; only the propagated identity is carried here.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
