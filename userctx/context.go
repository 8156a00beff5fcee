package userctx

import "context"

// Context key type
type contextKey string

const userIDKey contextKey = "user_id"

// SetUserID adds the signed-in user's ID to the request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the user ID from request context
func GetUserID(ctx context.Context) string {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
