package services

import (
	portsrepo "collectbox/internal/core/ports/repositories"
	portssvc "collectbox/internal/core/ports/services"
)

// NewServiceContainer wires the concrete services behind their facades.
func NewServiceContainer(
	boxRepo portsrepo.BoxRepositoryFacade,
	eventRepo portsrepo.EventRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	converter portssvc.RateConverter,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Box:      NewBoxService(boxRepo, eventRepo, currencyRepo, converter),
		Event:    NewEventService(eventRepo, currencyRepo),
		Currency: NewCurrencyService(currencyRepo),
	}
}
