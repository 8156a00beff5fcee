package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/models"
	"github.com/blogem/signin-with-google/repositories"
	"github.com/blogem/signin-with-google/services"
	"github.com/blogem/signin-with-google/userctx"
)

// AuditLogger middleware records all POST/PUT/DELETE requests. The acting
// user is resolved before the handler runs, so a sign-out is attributed to
// the account it ends.
func AuditLogger(auditRepo repositories.AuditRepository, session services.AuthSessionClient, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					UserID:    actingUserID(r, session, logger),
					Event:     models.AuditEventShellMutation,
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					Detail:    captureFormData(r),
				}

				// Write asynchronously; the entry outlives the request
				ctx := context.WithoutCancel(r.Context())
				go func() {
					if err := auditRepo.Create(ctx, entry); err != nil {
						logger.Warn("Failed to create audit log", zap.Error(err))
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// actingUserID returns the user already placed in context, or asks the backend
func actingUserID(r *http.Request, session services.AuthSessionClient, logger *zap.Logger) string {
	if id := userctx.GetUserID(r.Context()); id != "" {
		return id
	}
	user, err := session.GetCurrentUser(r.Context())
	if err != nil {
		logger.Debug("Audit user lookup cancelled", zap.Error(err))
		return ""
	}
	if user == nil {
		return ""
	}
	return user.ID
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// captureFormData captures form data as a JSON string
func captureFormData(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	if len(r.PostForm) == 0 {
		return ""
	}

	formMap := make(map[string]interface{})
	for key, values := range r.PostForm {
		if len(values) == 1 {
			formMap[key] = values[0]
		} else {
			formMap[key] = values
		}
	}

	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
