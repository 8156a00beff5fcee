package authenticator

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrHandleConsumed is returned when a sign-in handle is used twice
var ErrHandleConsumed = errors.New("sign-in handle already consumed")

// ProviderHandle is an opaque, single-use token for a pending interactive
// sign-in step. The shell sends the user to URL and hands the handle back
// unmodified with the provider's response.
type ProviderHandle struct {
	id       string
	url      string
	state    string
	verifier string
	nonce    string
	consumed atomic.Bool
}

// NewProviderHandle creates a pending handle
func NewProviderHandle(url, state, verifier, nonce string) *ProviderHandle {
	return &ProviderHandle{
		id:       uuid.NewString(),
		url:      url,
		state:    state,
		verifier: verifier,
		nonce:    nonce,
	}
}

// ID identifies the handle for shells that have to park it between requests
func (h *ProviderHandle) ID() string { return h.id }

// URL is where the interactive step takes place
func (h *ProviderHandle) URL() string { return h.url }

// State is the anti-forgery value the provider echoes back
func (h *ProviderHandle) State() string { return h.state }

// Nonce is bound into the identity token
func (h *ProviderHandle) Nonce() string { return h.nonce }

// Verifier is the PKCE code verifier
func (h *ProviderHandle) Verifier() string { return h.verifier }

// Consume marks the handle used. Only the first call succeeds.
func (h *ProviderHandle) Consume() error {
	if !h.consumed.CompareAndSwap(false, true) {
		return ErrHandleConsumed
	}
	return nil
}

// Consumed reports whether Consume has been called
func (h *ProviderHandle) Consumed() bool {
	return h.consumed.Load()
}
