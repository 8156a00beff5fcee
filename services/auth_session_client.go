package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/models"
)

// Sign-in outcomes reported to an OutcomeRecorder
const (
	OutcomeSuccess     = "success"
	OutcomeFailure     = "failure"
	OutcomeCancelled   = "cancelled"
	OutcomeUnavailable = "unavailable"
)

// OutcomeRecorder receives sign-in and sign-out outcomes
type OutcomeRecorder interface {
	RecordSignIn(outcome string)
	RecordSignOut(outcome string)
}

// ClientConfig configures the sign-in request sent to the provider
type ClientConfig struct {
	ServerClientID             string
	AutoSelectEnabled          bool
	FilterByAuthorizedAccounts bool
}

// DefaultClientConfig returns the one-tap defaults: auto-select on and any
// account allowed
func DefaultClientConfig(serverClientID string) ClientConfig {
	return ClientConfig{
		ServerClientID:             serverClientID,
		AutoSelectEnabled:          true,
		FilterByAuthorizedAccounts: false,
	}
}

// AuthSessionClient drives the sign-in lifecycle between the identity
// provider and the backend auth service.
//
// A non-nil error from any method always means the operation was cancelled;
// it is the caller's context error or a collaborator error wrapping
// context.Canceled. Every other failure is reported as a value.
type AuthSessionClient interface {
	// BeginSignIn returns the pending handle, or nil when sign-in is unavailable
	BeginSignIn(ctx context.Context) (*authenticator.ProviderHandle, error)
	// CompleteSignIn consumes the response's handle and exchanges the
	// identity token for a backend session
	CompleteSignIn(ctx context.Context, response authenticator.ProviderResponse) (models.SignInResult, error)
	// SignOut signs out of the provider and the backend on a best-effort basis
	SignOut(ctx context.Context) error
	// GetCurrentUser asks the backend who is signed in; nil when nobody is
	GetCurrentUser(ctx context.Context) (*models.UserData, error)
}

// authSessionClient implements AuthSessionClient interface
type authSessionClient struct {
	provider authenticator.Provider
	identity IdentityService
	config   ClientConfig
	logger   *zap.Logger
	recorder OutcomeRecorder
}

// NewAuthSessionClient creates a new auth session client. recorder may be nil.
func NewAuthSessionClient(provider authenticator.Provider, identity IdentityService, config ClientConfig, logger *zap.Logger, recorder OutcomeRecorder) AuthSessionClient {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &authSessionClient{
		provider: provider,
		identity: identity,
		config:   config,
		logger:   logger,
		recorder: recorder,
	}
}

// BeginSignIn asks the provider to start an interactive sign-in
func (c *authSessionClient) BeginSignIn(ctx context.Context) (*authenticator.ProviderHandle, error) {
	result, err := c.provider.BeginSignIn(ctx, authenticator.BeginSignInRequest{
		ServerClientID:             c.config.ServerClientID,
		AutoSelectEnabled:          c.config.AutoSelectEnabled,
		FilterByAuthorizedAccounts: c.config.FilterByAuthorizedAccounts,
	})
	if err != nil {
		if cerr := Cancellation(ctx, err); cerr != nil {
			c.logger.Debug("Begin sign-in cancelled", zap.Error(cerr))
			c.recorder.RecordSignIn(OutcomeCancelled)
			return nil, cerr
		}
		c.logger.Warn("Begin sign-in failed", zap.Error(err))
		c.recorder.RecordSignIn(OutcomeUnavailable)
		return nil, nil
	}

	if result == nil || result.PendingHandle == nil {
		c.logger.Warn("Provider returned no sign-in handle")
		c.recorder.RecordSignIn(OutcomeUnavailable)
		return nil, nil
	}

	return result.PendingHandle, nil
}

// CompleteSignIn extracts the identity token from the provider response and
// signs in to the backend with it
func (c *authSessionClient) CompleteSignIn(ctx context.Context, response authenticator.ProviderResponse) (models.SignInResult, error) {
	if response.Handle == nil {
		return c.fail(authenticator.ErrNoHandle), nil
	}
	if err := response.Handle.Consume(); err != nil {
		c.logger.Error("Sign-in handle reused", zap.String("handle_id", response.Handle.ID()), zap.Error(err))
		c.recorder.RecordSignIn(OutcomeFailure)
		return models.NewSignInFailure(err.Error()), nil
	}

	credential, err := c.provider.GetCredentialFromResponse(ctx, response)
	if err != nil {
		if cerr := Cancellation(ctx, err); cerr != nil {
			return c.cancelled(cerr)
		}
		return c.fail(err), nil
	}
	c.logger.Debug("Received identity token", zap.Int("id_token_length", len(credential.IDToken)))

	account, err := c.identity.SignInWithCredential(ctx, NewGoogleCredential(credential.IDToken, credential.Nonce))
	if err != nil {
		if cerr := Cancellation(ctx, err); cerr != nil {
			return c.cancelled(cerr)
		}
		return c.fail(err), nil
	}
	if account == nil {
		return c.fail(errors.New("sign-in returned no account")), nil
	}

	c.recorder.RecordSignIn(OutcomeSuccess)
	return models.NewSignInSuccess(account.ToUserData()), nil
}

// SignOut signs out of the provider, then the backend. Failures other than
// cancellation are logged and skipped so the backend session is still cleared.
func (c *authSessionClient) SignOut(ctx context.Context) error {
	outcome := OutcomeSuccess

	if err := c.provider.SignOut(ctx); err != nil {
		if cerr := Cancellation(ctx, err); cerr != nil {
			c.recorder.RecordSignOut(OutcomeCancelled)
			return cerr
		}
		c.logger.Warn("Provider sign-out failed", zap.Error(err))
		outcome = OutcomeFailure
	}

	if err := c.identity.SignOut(ctx); err != nil {
		if cerr := Cancellation(ctx, err); cerr != nil {
			c.recorder.RecordSignOut(OutcomeCancelled)
			return cerr
		}
		c.logger.Warn("Backend sign-out failed", zap.Error(err))
		outcome = OutcomeFailure
	}

	c.recorder.RecordSignOut(outcome)
	return nil
}

// GetCurrentUser re-queries the backend on every call
func (c *authSessionClient) GetCurrentUser(ctx context.Context) (*models.UserData, error) {
	account, err := c.identity.CurrentAccount(ctx)
	if err != nil {
		if cerr := Cancellation(ctx, err); cerr != nil {
			return nil, cerr
		}
		c.logger.Warn("Failed to read current account", zap.Error(err))
		return nil, nil
	}
	return account.ToUserData(), nil
}

func (c *authSessionClient) fail(err error) models.SignInResult {
	c.logger.Warn("Sign-in failed", zap.Error(err))
	c.recorder.RecordSignIn(OutcomeFailure)
	return models.NewSignInFailure(err.Error())
}

func (c *authSessionClient) cancelled(err error) (models.SignInResult, error) {
	c.logger.Debug("Sign-in cancelled", zap.Error(err))
	c.recorder.RecordSignIn(OutcomeCancelled)
	return models.SignInResult{}, err
}

// Cancellation returns the cancellation signal carried by err, or nil when
// err is an ordinary failure. The caller's context being done always counts
// as cancellation; a collaborator's own deadline does not.
func Cancellation(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(err, ctxErr) {
			return err
		}
		return ctxErr
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type noopRecorder struct{}

func (noopRecorder) RecordSignIn(string)  {}
func (noopRecorder) RecordSignOut(string) {}
