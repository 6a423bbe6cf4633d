package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for accessing service functionality and is
// used throughout the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Balance     BalanceSvc
	Party       PartySvcFacade
	Business    BusinessSvcFacade
	Identity    IdentitySvcFacade
	Settings    SettingsSvcFacade
}
