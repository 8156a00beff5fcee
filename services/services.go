package services

import (
	"go.uber.org/zap"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/repositories"
)

// Services holds all service instances
type Services struct {
	Identity IdentityService
	Session  AuthSessionClient
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, provider authenticator.Provider, verifier TokenVerifier, config ClientConfig, logger *zap.Logger, recorder OutcomeRecorder) *Services {
	identity := NewIdentityService(verifier, repos.Account, repos.Audit, logger.Named("identity"))
	return &Services{
		Identity: identity,
		Session:  NewAuthSessionClient(provider, identity, config, logger.Named("session"), recorder),
	}
}
