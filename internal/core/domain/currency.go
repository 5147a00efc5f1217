package domain

// Currency represents a supported currency in the domain.
// Currencies are immutable once created and are never deleted.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}
