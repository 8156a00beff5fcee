package services_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/authenticator/authtest"
	"github.com/blogem/signin-with-google/database"
	"github.com/blogem/signin-with-google/models"
	"github.com/blogem/signin-with-google/repositories"
	"github.com/blogem/signin-with-google/services"
	"github.com/blogem/signin-with-google/services/mocks"
)

const testClientID = "web-client-id"

func setupTestDB(t *testing.T) *sql.DB {
	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

type identityFixture struct {
	issuer  *authtest.Issuer
	repos   *repositories.Repositories
	service services.IdentityService
}

func newIdentityFixture(t *testing.T) *identityFixture {
	issuer := authtest.NewIssuer(t)
	repos := repositories.NewRepositories(setupTestDB(t))
	verifier := authenticator.NewStaticOIDCVerifier(issuer.URL(), testClientID, &issuer.Key.PublicKey)

	return &identityFixture{
		issuer:  issuer,
		repos:   repos,
		service: services.NewIdentityService(verifier, repos.Account, repos.Audit, zap.NewNop()),
	}
}

func TestIdentityService_SignInWithCredential(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	token := f.issuer.Sign(t, testClientID, jwt.MapClaims{
		"sub":     "u1",
		"name":    "Ann",
		"email":   "ann@example.com",
		"picture": "https://example.com/ann.png",
		"nonce":   "n1",
	})

	account, err := f.service.SignInWithCredential(ctx, services.NewGoogleCredential(token, "n1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", account.UID)
	assert.Equal(t, "Ann", account.DisplayName)
	assert.Equal(t, "ann@example.com", account.Email)
	assert.Equal(t, services.GoogleProviderID, account.Provider)

	current, err := f.service.CurrentAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.UID)
	assert.Equal(t, "https://example.com/ann.png", current.PhotoURL)

	entries, err := f.repos.Audit.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditEventSignIn, entries[0].Event)
	assert.Equal(t, "u1", entries[0].UserID)
}

func TestIdentityService_RejectsInvalidToken(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	_, err := f.service.SignInWithCredential(ctx, services.NewGoogleCredential("garbage", ""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id token")

	wrongNonce := f.issuer.Sign(t, testClientID, jwt.MapClaims{"sub": "u1", "nonce": "other"})
	_, err = f.service.SignInWithCredential(ctx, services.NewGoogleCredential(wrongNonce, "n1"))
	assert.ErrorIs(t, err, authenticator.ErrNonceMismatch)

	current, err := f.service.CurrentAccount(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	entries, err := f.repos.Audit.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditEventSignInFailed, entries[0].Event)
}

func TestIdentityService_RejectsInvalidAccount(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	noSubject := f.issuer.Sign(t, testClientID, jwt.MapClaims{"name": "Nobody"})
	_, err := f.service.SignInWithCredential(ctx, services.NewGoogleCredential(noSubject, ""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UID is required")
}

func TestIdentityService_RejectsOtherProviders(t *testing.T) {
	f := newIdentityFixture(t)

	_, err := f.service.SignInWithCredential(context.Background(), services.AuthCredential{ProviderID: "github.com", IDToken: "abc"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported credential provider")
}

func TestIdentityService_SignOut(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	// Signing out while signed out is a no-op
	require.NoError(t, f.service.SignOut(ctx))

	token := f.issuer.Sign(t, testClientID, jwt.MapClaims{"sub": "u1"})
	_, err := f.service.SignInWithCredential(ctx, services.NewGoogleCredential(token, ""))
	require.NoError(t, err)

	require.NoError(t, f.service.SignOut(ctx))

	current, err := f.service.CurrentAccount(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	entries, err := f.repos.Audit.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditEventSignOut, entries[0].Event)
}

func TestIdentityService_Cancelled(t *testing.T) {
	f := newIdentityFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.service.CurrentAccount(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIdentityService_VerifierError(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewRepositories(setupTestDB(t))
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "abc", "").Return(nil, errors.New("token expired"))

	service := services.NewIdentityService(verifier, repos.Account, nil, zap.NewNop())
	_, err := service.SignInWithCredential(ctx, services.NewGoogleCredential("abc", ""))

	assert.EqualError(t, err, "invalid id token: token expired")
}
