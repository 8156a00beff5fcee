package authenticator

import (
	"context"
	"crypto"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// ErrNonceMismatch is returned when the identity token was not minted for
// the pending sign-in
var ErrNonceMismatch = errors.New("id_token nonce does not match")

// OIDCVerifier verifies identity tokens issued for a client id
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer's signing keys
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	if clientID == "" {
		return nil, errors.New("client ID is required")
	}
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("discovering %s: %w", issuer, err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// NewStaticOIDCVerifier verifies against fixed public keys
func NewStaticOIDCVerifier(issuer, clientID string, keys ...crypto.PublicKey) *OIDCVerifier {
	keySet := &oidc.StaticKeySet{PublicKeys: keys}
	return &OIDCVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID}),
	}
}

// Verify checks the token signature, audience, expiry and, when nonce is
// non-empty, the nonce. It returns the token claims.
func (v *OIDCVerifier) Verify(ctx context.Context, rawIDToken, nonce string) (Claims, error) {
	if rawIDToken == "" {
		return nil, ErrMissingIDToken
	}

	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	if nonce != "" && idToken.Nonce != nonce {
		return nil, ErrNonceMismatch
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	return claims, nil
}
