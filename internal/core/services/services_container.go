package services

import (
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return NewServiceContainerWithOAuth(cfg, repos, NewGoogleOAuthService(cfg))
}

// NewServiceContainerWithOAuth is NewServiceContainer with an explicit Google OAuth client.
func NewServiceContainerWithOAuth(cfg *config.Config, repos portsrepo.RepositoryProvider, googleOAuth portssvc.GoogleOAuthSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The business service is the authorizer of every business-scoped service.
	container.Business = NewBusinessService(repos.TxManager, repos.BusinessRepo, repos.AccountRepo)
	authorizer := WithBusinessAuthorizer(container.Business)

	container.Account = NewAccountService(repos.TxManager, repos.AccountRepo, repos.TransactionRepo, repos.PartyRepo, authorizer)
	container.Transaction = NewTransactionService(repos.TxManager, repos.TransactionRepo, repos.AccountRepo, repos.PartyRepo, authorizer)
	container.Balance = NewBalanceService(repos.AccountRepo, repos.TransactionRepo, authorizer)
	container.Party = NewPartyService(repos.TxManager, repos.PartyRepo, repos.AccountRepo, repos.TransactionRepo, authorizer)
	container.Settings = NewSettingsService(repos.SettingsRepo, cfg.DefaultCurrency)
	container.Identity = NewIdentityService(
		repos.TxManager,
		repos.UserRepo,
		container.Business,
		container.Settings,
		googleOAuth,
		TokenConfig{Secret: cfg.JWTSecret, Expiry: cfg.JWTExpiryDuration, Issuer: cfg.JWTIssuer},
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.BusinessSvcFacade    = (*businessService)(nil)
)
