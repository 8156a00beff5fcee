package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/services"
	"github.com/blogem/signin-with-google/userctx"
)

// RequireAuth ensures a user is signed in, asking the backend on every request.
// Signed-out requests are redirected to the sign-in screen.
func RequireAuth(session services.AuthSessionClient, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := session.GetCurrentUser(r.Context())
			if err != nil {
				logger.Debug("Request cancelled", zap.Error(err))
				return
			}
			if user == nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			// Add the user ID to request context for use in handlers
			next.ServeHTTP(w, r.WithContext(userctx.SetUserID(r.Context(), user.ID)))
		})
	}
}
