package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Box      BoxSvcFacade
	Event    EventSvcFacade
	Currency CurrencySvcFacade
}
