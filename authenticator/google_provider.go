package authenticator

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// DefaultGoogleIssuer is Google's OpenID Connect issuer
const DefaultGoogleIssuer = "https://accounts.google.com"

// GoogleProvider implements the Provider interface for Google sign-in
// over OpenID Connect authorization code flow with PKCE
type GoogleProvider struct {
	provider *oidc.Provider
	config   oauth2.Config

	mu                 sync.Mutex
	autoSelectDisabled bool
}

// GoogleConfig holds Google sign-in configuration
type GoogleConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// NewGoogleProvider creates a new Google provider with the given configuration
func NewGoogleProvider(ctx context.Context, cfg GoogleConfig) (Provider, error) {
	// Validate required configuration
	if cfg.ClientID == "" {
		return nil, errors.New("server client ID is required")
	}
	if cfg.CallbackURL == "" {
		return nil, errors.New("callback URL is required")
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = DefaultGoogleIssuer
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("discovering %s: %w", issuer, err)
	}

	conf := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &GoogleProvider{
		provider: provider,
		config:   conf,
	}, nil
}

// BeginSignIn prepares the authorization request and returns its pending handle
func (p *GoogleProvider) BeginSignIn(ctx context.Context, req BeginSignInRequest) (*ProviderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.ServerClientID != "" && req.ServerClientID != p.config.ClientID {
		return nil, fmt.Errorf("server client ID %q is not configured for this provider", req.ServerClientID)
	}

	state, err := generateRandomToken()
	if err != nil {
		return nil, fmt.Errorf("generating state: %w", err)
	}
	nonce, err := generateRandomToken()
	if err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	opts := []oauth2.AuthCodeOption{
		oauth2.S256ChallengeOption(verifier),
		oidc.Nonce(nonce),
	}
	if prompt := p.prompt(req); prompt != "" {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", prompt))
	}

	handle := NewProviderHandle(p.config.AuthCodeURL(state, opts...), state, verifier, nonce)
	return &ProviderResult{PendingHandle: handle}, nil
}

// prompt picks the account-selection behaviour. A sign-out turns auto-select
// off until the next successful sign-in.
func (p *GoogleProvider) prompt(req BeginSignInRequest) string {
	p.mu.Lock()
	disabled := p.autoSelectDisabled
	p.mu.Unlock()

	switch {
	case req.FilterByAuthorizedAccounts:
		return "none"
	case !req.AutoSelectEnabled || disabled:
		return "select_account"
	default:
		return ""
	}
}

// GetCredentialFromResponse exchanges the authorization code for tokens and
// returns the identity token
func (p *GoogleProvider) GetCredentialFromResponse(ctx context.Context, resp ProviderResponse) (*Credential, error) {
	if resp.Handle == nil {
		return nil, ErrNoHandle
	}
	if resp.Error != "" {
		if resp.ErrorDescription != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrProviderDenied, resp.Error, resp.ErrorDescription)
		}
		return nil, fmt.Errorf("%w: %s", ErrProviderDenied, resp.Error)
	}
	if resp.State != resp.Handle.State() {
		return nil, ErrStateMismatch
	}
	if resp.Code == "" {
		return nil, errors.New("authorization code missing from provider response")
	}

	oauth2Token, err := p.config.Exchange(ctx, resp.Code, oauth2.VerifierOption(resp.Handle.Verifier()))
	if err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	idToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, ErrMissingIDToken
	}

	p.mu.Lock()
	p.autoSelectDisabled = false
	p.mu.Unlock()

	return &Credential{
		IDToken:     idToken,
		AccessToken: oauth2Token.AccessToken,
		Nonce:       resp.Handle.Nonce(),
	}, nil
}

// SignOut disables automatic account selection for the next sign-in.
// Google keeps no client-side session for this flow, so nothing else is cleared.
func (p *GoogleProvider) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	p.autoSelectDisabled = true
	p.mu.Unlock()
	return nil
}

// generateRandomToken generates a random value for state and nonce
func generateRandomToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
