package services_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/authenticator/authtest"
	"github.com/blogem/signin-with-google/models"
	"github.com/blogem/signin-with-google/repositories"
	"github.com/blogem/signin-with-google/services"
)

// TestSignInFlow runs begin, complete, read and sign-out against a fake
// Google issuer and a real account store
func TestSignInFlow(t *testing.T) {
	ctx := context.Background()
	issuer := authtest.NewIssuer(t)

	provider, err := authenticator.NewGoogleProvider(ctx, authenticator.GoogleConfig{
		Issuer:      issuer.URL(),
		ClientID:    testClientID,
		CallbackURL: "http://localhost:8080/callback",
	})
	require.NoError(t, err)

	verifier, err := authenticator.NewOIDCVerifier(ctx, issuer.URL(), testClientID)
	require.NoError(t, err)

	repos := repositories.NewRepositories(setupTestDB(t))
	srvs := services.NewServices(repos, provider, verifier, services.DefaultClientConfig(testClientID), zap.NewNop(), nil)
	client := srvs.Session

	// Nobody is signed in yet
	user, err := client.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	handle, err := client.BeginSignIn(ctx)
	require.NoError(t, err)
	require.NotNil(t, handle)

	authURL, err := url.Parse(handle.URL())
	require.NoError(t, err)
	nonce := authURL.Query().Get("nonce")

	issuer.TokenHandler = func(w http.ResponseWriter, r *http.Request) {
		authtest.TokenResponse(w, issuer.Sign(t, testClientID, jwt.MapClaims{
			"sub":   "u1",
			"name":  "Ann",
			"nonce": nonce,
		}))
	}

	result, err := client.CompleteSignIn(ctx, authenticator.ProviderResponse{
		Handle: handle,
		State:  authURL.Query().Get("state"),
		Code:   "code-1",
	})
	require.NoError(t, err)
	require.Nil(t, result.Error, "unexpected error: %s", models.StringValue(result.Error))
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "Ann", models.StringValue(result.User.DisplayName))
	assert.Nil(t, result.User.AvatarURL)

	user, err = client.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	require.NoError(t, client.SignOut(ctx))

	// No stale user after sign-out
	user, err = client.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

// TestSignInFlow_TokenForOtherClient tests that a token minted for another
// client is captured as an error result
func TestSignInFlow_TokenForOtherClient(t *testing.T) {
	ctx := context.Background()
	issuer := authtest.NewIssuer(t)
	issuer.TokenHandler = func(w http.ResponseWriter, r *http.Request) {
		authtest.TokenResponse(w, issuer.Sign(t, "another-client", jwt.MapClaims{"sub": "u1"}))
	}

	provider, err := authenticator.NewGoogleProvider(ctx, authenticator.GoogleConfig{
		Issuer:      issuer.URL(),
		ClientID:    testClientID,
		CallbackURL: "http://localhost:8080/callback",
	})
	require.NoError(t, err)
	verifier := authenticator.NewStaticOIDCVerifier(issuer.URL(), testClientID, &issuer.Key.PublicKey)

	repos := repositories.NewRepositories(setupTestDB(t))
	client := services.NewServices(repos, provider, verifier, services.DefaultClientConfig(testClientID), zap.NewNop(), nil).Session

	handle, err := client.BeginSignIn(ctx)
	require.NoError(t, err)
	require.NotNil(t, handle)

	result, err := client.CompleteSignIn(ctx, authenticator.ProviderResponse{
		Handle: handle,
		State:  handle.State(),
		Code:   "code-1",
	})
	require.NoError(t, err)
	assert.Nil(t, result.User)
	assert.Contains(t, models.StringValue(result.Error), "invalid id token")

	user, err := client.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
