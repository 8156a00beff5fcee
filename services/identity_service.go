package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/models"
	"github.com/blogem/signin-with-google/repositories"
)

// GoogleProviderID identifies credentials issued by Google
const GoogleProviderID = "google.com"

// AuthCredential is a provider identity assertion in the form the backend accepts
type AuthCredential struct {
	ProviderID  string
	IDToken     string
	AccessToken string
	Nonce       string
}

// NewGoogleCredential builds a backend credential from a Google identity
// token. nonce may be empty when the token was not bound to one.
func NewGoogleCredential(idToken, nonce string) AuthCredential {
	return AuthCredential{
		ProviderID: GoogleProviderID,
		IDToken:    idToken,
		Nonce:      nonce,
	}
}

// IdentityService is the backend auth service. It is the source of truth
// for which account is signed in.
type IdentityService interface {
	SignInWithCredential(ctx context.Context, credential AuthCredential) (*models.Account, error)
	SignOut(ctx context.Context) error
	// CurrentAccount returns nil and no error when nobody is signed in
	CurrentAccount(ctx context.Context) (*models.Account, error)
}

// TokenVerifier validates identity tokens and returns their claims
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken, nonce string) (authenticator.Claims, error)
}

// identityService implements IdentityService on top of the account store
type identityService struct {
	verifier TokenVerifier
	accounts repositories.AccountRepository
	audit    repositories.AuditRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewIdentityService creates a new identity service
func NewIdentityService(verifier TokenVerifier, accounts repositories.AccountRepository, audit repositories.AuditRepository, logger *zap.Logger) IdentityService {
	return &identityService{
		verifier: verifier,
		accounts: accounts,
		audit:    audit,
		logger:   logger,
		now:      time.Now,
	}
}

// SignInWithCredential verifies the credential and makes its account current
func (s *identityService) SignInWithCredential(ctx context.Context, credential AuthCredential) (*models.Account, error) {
	if credential.ProviderID != GoogleProviderID {
		return nil, fmt.Errorf("unsupported credential provider %q", credential.ProviderID)
	}

	claims, err := s.verifier.Verify(ctx, credential.IDToken, credential.Nonce)
	if err != nil {
		s.recordAudit(ctx, "", models.AuditEventSignInFailed, err.Error())
		return nil, fmt.Errorf("invalid id token: %w", err)
	}

	account := &models.Account{
		UID:         claims.String("sub"),
		DisplayName: claims.String("name"),
		Email:       claims.String("email"),
		PhotoURL:    claims.String("picture"),
		Provider:    credential.ProviderID,
		SignedInAt:  s.now(),
	}
	if errs := account.Validate(); errs.HasErrors() {
		return nil, fmt.Errorf("invalid account: %s", strings.Join(errs.GetMessages(), ", "))
	}

	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, err
	}
	if err := s.accounts.SetCurrent(ctx, account.UID, account.SignedInAt); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, account.UID, models.AuditEventSignIn, "")
	return account, nil
}

// SignOut clears the current session. Signing out while signed out is a no-op.
func (s *identityService) SignOut(ctx context.Context) error {
	current, err := s.CurrentAccount(ctx)
	if err != nil {
		return err
	}

	if err := s.accounts.ClearCurrent(ctx); err != nil {
		return err
	}

	if current != nil {
		s.recordAudit(ctx, current.UID, models.AuditEventSignOut, "")
	}
	return nil
}

// CurrentAccount reads the signed-in account from the store
func (s *identityService) CurrentAccount(ctx context.Context) (*models.Account, error) {
	account, err := s.accounts.GetCurrent(ctx)
	if errors.Is(err, repositories.ErrNoAccount) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// recordAudit writes an audit entry; failures are logged and otherwise ignored
func (s *identityService) recordAudit(ctx context.Context, userID, event, detail string) {
	if s.audit == nil {
		return
	}
	entry := &models.AuditLogEntry{
		UserID: userID,
		Event:  event,
		Detail: detail,
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to create audit log entry", zap.String("event", event), zap.Error(err))
	}
}
