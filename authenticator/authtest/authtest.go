// Package authtest provides a fake OpenID Connect issuer (discovery, key set
// and token endpoint) and token signing helpers for tests.
package authtest

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

// KeyID identifies the issuer's signing key in its key set
const KeyID = "authtest-key"

// Issuer is a fake OpenID Connect issuer backed by httptest
type Issuer struct {
	Server *httptest.Server
	Key    *rsa.PrivateKey

	// TokenHandler serves the token endpoint. Tests replace it to
	// simulate exchange failures.
	TokenHandler http.HandlerFunc
}

// NewIssuer starts a fake issuer that is closed with the test
func NewIssuer(t *testing.T) *Issuer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate signing key: %v", err)
	}

	iss := &Issuer{Key: key}
	mux := http.NewServeMux()
	iss.Server = httptest.NewServer(mux)
	t.Cleanup(iss.Server.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"issuer":                                iss.URL(),
			"authorization_endpoint":                iss.URL() + "/auth",
			"token_endpoint":                        iss.URL() + "/token",
			"jwks_uri":                              iss.URL() + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})
	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, jose.JSONWebKeySet{
			Keys: []jose.JSONWebKey{{
				Key:       &iss.Key.PublicKey,
				KeyID:     KeyID,
				Algorithm: string(jose.RS256),
				Use:       "sig",
			}},
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if iss.TokenHandler == nil {
			http.Error(w, "no token handler", http.StatusInternalServerError)
			return
		}
		iss.TokenHandler(w, r)
	})

	return iss
}

// URL is the issuer identifier
func (i *Issuer) URL() string {
	return i.Server.URL
}

// Sign returns an RS256 identity token with standard claims for clientID
// merged with extra
func (i *Issuer) Sign(t *testing.T, clientID string, extra jwt.MapClaims) string {
	t.Helper()
	return SignIDToken(t, i.Key, i.URL(), clientID, extra)
}

// SignIDToken signs an identity token with key
func SignIDToken(t *testing.T, key *rsa.PrivateKey, issuer, clientID string, extra jwt.MapClaims) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": issuer,
		"aud": clientID,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("Failed to sign id token: %v", err)
	}
	return raw
}

// TokenResponse writes a successful token endpoint response
func TokenResponse(w http.ResponseWriter, idToken string) {
	body := map[string]interface{}{
		"access_token": "access-token",
		"token_type":   "Bearer",
		"expires_in":   3600,
	}
	if idToken != "" {
		body["id_token"] = idToken
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
