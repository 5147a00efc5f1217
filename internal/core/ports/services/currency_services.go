package services

import (
	"context"

	"collectbox/internal/core/domain"
	"collectbox/internal/dto"
)

// CurrencySvcFacade defines the currency registry operations.
type CurrencySvcFacade interface {
	// CreateCurrency registers a new supported currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by its 3-letter code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
