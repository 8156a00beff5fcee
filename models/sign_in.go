package models

// UserData describes the authenticated identity shown to the user.
// It is only ever built from a successful token exchange.
type UserData struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

// SignInResult is the outcome of one sign-in attempt. On a terminal
// outcome exactly one of User and Error is set.
type SignInResult struct {
	User  *UserData `json:"user"`
	Error *string   `json:"error"`
}

// NewSignInSuccess returns a result carrying user
func NewSignInSuccess(user *UserData) SignInResult {
	return SignInResult{User: user}
}

// NewSignInFailure returns a result carrying the failure message
func NewSignInFailure(message string) SignInResult {
	return SignInResult{Error: &message}
}

// Succeeded reports whether the attempt produced a user
func (r SignInResult) Succeeded() bool {
	return r.User != nil
}

// SignInState is the UI-observable sign-in state
type SignInState struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`
}

// DefaultSignInState is the idle state
func DefaultSignInState() SignInState {
	return SignInState{}
}
