package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/models"
	"github.com/blogem/signin-with-google/services"
)

const handleSessionKey = "signin_handle"

// AuthController handles the sign-in screens and provider callback
type AuthController struct {
	session services.AuthSessionClient
	signIn  *SignInController
	pending *pendingHandles
	logger  *zap.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(session services.AuthSessionClient, signIn *SignInController, logger *zap.Logger) *AuthController {
	return &AuthController{
		session: session,
		signIn:  signIn,
		pending: newPendingHandles(),
		logger:  logger,
	}
}

// Index handles GET / - the sign-in screen, or the profile when signed in
func (ac *AuthController) Index(w http.ResponseWriter, r *http.Request) {
	user, err := ac.session.GetCurrentUser(r.Context())
	if err != nil {
		ac.logger.Debug("Request cancelled", zap.Error(err))
		return
	}
	if user != nil {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	state := ac.signIn.State()
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
	}{
		Title:       "Sign in",
		CurrentPage: "sign_in",
		Error:       models.StringValue(state.Error),
	}

	renderTemplate(w, "sign_in", "templates/sign_in.html", templateData)

	// An error is shown once
	if state.Error != nil {
		ac.signIn.ResetState()
	}
}

// Login handles GET /login and sends the user to the provider
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	handle, err := ac.session.BeginSignIn(r.Context())
	if err != nil {
		ac.logger.Debug("Sign-in cancelled", zap.Error(err))
		return
	}
	if handle == nil {
		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
		}{
			Title:       "Sign in",
			CurrentPage: "sign_in",
			Error:       "Google sign-in is unavailable right now. Please try again.",
		}
		renderTemplateWithStatus(w, http.StatusServiceUnavailable, "sign_in_unavailable", "templates/sign_in.html", templateData)
		return
	}

	// Park the handle until the provider calls back
	ac.pending.Put(handle)
	sess := session.GetSession(r)
	if err := sess.Set(handleSessionKey, handle.ID()); err != nil {
		http.Error(w, "Failed to store sign-in session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, handle.URL(), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback from the provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	var handle *authenticator.ProviderHandle
	if id, ok := sess.Get(handleSessionKey).(string); ok {
		handle = ac.pending.Take(id)
	}
	sess.Delete(handleSessionKey)

	query := r.URL.Query()
	result, err := ac.session.CompleteSignIn(r.Context(), authenticator.ProviderResponse{
		Handle:           handle,
		State:            query.Get("state"),
		Code:             query.Get("code"),
		Error:            query.Get("error"),
		ErrorDescription: query.Get("error_description"),
	})
	if err != nil {
		ac.logger.Debug("Sign-in cancelled", zap.Error(err))
		return
	}

	ac.signIn.OnSignInResult(result)
	if ac.signIn.State().Success {
		// Navigation consumes the success signal
		ac.signIn.ResetState()
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.session.SignOut(r.Context()); err != nil {
		ac.logger.Debug("Sign-out cancelled", zap.Error(err))
		return
	}

	ac.signIn.ResetState()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Profile handles GET /profile
func (ac *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := ac.session.GetCurrentUser(r.Context())
	if err != nil {
		ac.logger.Debug("Request cancelled", zap.Error(err))
		return
	}
	if user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		DisplayName string
		AvatarURL   string
	}{
		Title:       "Profile",
		CurrentPage: "profile",
		DisplayName: models.StringValue(user.DisplayName),
		AvatarURL:   models.StringValue(user.AvatarURL),
	}

	renderTemplate(w, "profile", "templates/profile.html", templateData)
}

// Me handles GET /api/me
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, err := ac.session.GetCurrentUser(r.Context())
	if err != nil {
		ac.logger.Debug("Request cancelled", zap.Error(err))
		return
	}
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// State handles GET /api/state
func (ac *AuthController) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.signIn.State())
}

// StateStream handles GET /api/state/stream, sending the sign-in state as
// server-sent events until the client disconnects
func (ac *AuthController) StateStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for state := range ac.signIn.Observe(r.Context()) {
		data, err := json.Marshal(state)
		if err != nil {
			ac.logger.Warn("Failed to encode sign-in state", zap.Error(err))
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()
	}
}
