package authenticator

import (
	"context"
	"errors"
)

var (
	// ErrProviderDenied is returned when the provider reports that the
	// interactive step did not produce a credential
	ErrProviderDenied = errors.New("provider denied sign-in")
	// ErrStateMismatch is returned when a response does not belong to the handle
	ErrStateMismatch = errors.New("state does not match sign-in handle")
	// ErrMissingIDToken is returned when the provider issued no identity token
	ErrMissingIDToken = errors.New("no id_token in provider response")
	// ErrNoHandle is returned when a response arrives without its handle
	ErrNoHandle = errors.New("provider response has no sign-in handle")
)

// BeginSignInRequest configures a one-tap sign-in request
type BeginSignInRequest struct {
	// ServerClientID is the backend's OAuth client id the identity token is issued for
	ServerClientID string
	// AutoSelectEnabled lets the provider pick the account without a chooser
	AutoSelectEnabled bool
	// FilterByAuthorizedAccounts restricts sign-in to accounts that already
	// authorized this client
	FilterByAuthorizedAccounts bool
}

// ProviderResult is what the provider returns when sign-in can begin
type ProviderResult struct {
	PendingHandle *ProviderHandle
}

// ProviderResponse is the provider's answer to the interactive step, as
// delivered back by the shell
type ProviderResponse struct {
	Handle           *ProviderHandle
	State            string
	Code             string
	Error            string
	ErrorDescription string
}

// Credential is the identity assertion issued by the provider
type Credential struct {
	IDToken     string
	AccessToken string
	Nonce       string
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// String returns the string claim for key, or ""
func (c Claims) String(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// Provider abstracts the identity-provider SDK
type Provider interface {
	BeginSignIn(ctx context.Context, req BeginSignInRequest) (*ProviderResult, error)
	GetCredentialFromResponse(ctx context.Context, resp ProviderResponse) (*Credential, error)
	SignOut(ctx context.Context) error
}
