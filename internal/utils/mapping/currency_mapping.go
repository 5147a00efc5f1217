package mapping

import (
	"collectbox/internal/core/domain"
	"collectbox/internal/models"
)

// ToModelCurrency converts a domain.Currency to a models.Currency.
func ToModelCurrency(c domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode:  c.CurrencyCode,
		Name:          c.Name,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToDomainCurrency converts a models.Currency to a domain.Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainCurrencySlice converts a slice of models.Currency to domain currencies.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	res := make([]domain.Currency, len(ms))
	for i, m := range ms {
		res[i] = ToDomainCurrency(m)
	}
	return res
}
