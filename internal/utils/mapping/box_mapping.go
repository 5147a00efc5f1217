package mapping

import (
	"collectbox/internal/core/domain"
	"collectbox/internal/models"
)

// ToDomainBox converts a models.CollectionBox plus its entry rows to a domain box.
func ToDomainBox(m models.CollectionBox, amounts []models.BoxCurrencyAmount) domain.CollectionBox {
	return domain.CollectionBox{
		BoxID:     m.BoxID,
		EventID:   m.EventID,
		Amounts:   ToDomainAmountSlice(amounts),
		IsDeleted: m.IsDeleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAmount converts a models.BoxCurrencyAmount to a domain entry.
func ToDomainAmount(m models.BoxCurrencyAmount) domain.CurrencyAmount {
	return domain.CurrencyAmount{
		AmountID:     m.AmountID,
		BoxID:        m.BoxID,
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount,
		IsDeleted:    m.IsDeleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAmountSlice converts entry rows to domain entries.
func ToDomainAmountSlice(ms []models.BoxCurrencyAmount) []domain.CurrencyAmount {
	res := make([]domain.CurrencyAmount, len(ms))
	for i, m := range ms {
		res[i] = ToDomainAmount(m)
	}
	return res
}
