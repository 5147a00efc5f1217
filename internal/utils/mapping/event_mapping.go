package mapping

import (
	"collectbox/internal/core/domain"
	"collectbox/internal/models"
)

// ToModelEvent converts a domain event to its database model.
func ToModelEvent(d domain.FundraisingEvent) models.FundraisingEvent {
	return models.FundraisingEvent{
		EventID:        d.EventID,
		Name:           d.Name,
		CurrencyCode:   d.CurrencyCode,
		AccountBalance: d.AccountBalance,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ToDomainEvent converts a models.FundraisingEvent to a domain event.
func ToDomainEvent(m models.FundraisingEvent) domain.FundraisingEvent {
	return domain.FundraisingEvent{
		EventID:        m.EventID,
		Name:           m.Name,
		CurrencyCode:   m.CurrencyCode,
		AccountBalance: m.AccountBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainEventSlice converts event rows to domain events.
func ToDomainEventSlice(ms []models.FundraisingEvent) []domain.FundraisingEvent {
	res := make([]domain.FundraisingEvent, len(ms))
	for i, m := range ms {
		res[i] = ToDomainEvent(m)
	}
	return res
}
