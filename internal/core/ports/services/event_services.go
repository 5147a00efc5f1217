package services

import (
	"context"

	"collectbox/internal/core/domain"
	"collectbox/internal/dto"
)

// EventSvcFacade defines the fundraising event account operations.
type EventSvcFacade interface {
	// CreateEvent creates an event with a zero balance in its target currency.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.FundraisingEvent, error)

	// FinancialReport returns a sorted page of events plus the total count.
	FinancialReport(ctx context.Context, page, size int, sortBy, direction string) ([]domain.FundraisingEvent, int64, error)

	// HTMLReport renders the unpaged financial report as an HTML document.
	HTMLReport(ctx context.Context, sortBy, direction string) (string, error)

	// ExportFinancialReport renders the unpaged financial report in the given
	// format ("xlsx" or "pdf") and returns the bytes plus the content type.
	ExportFinancialReport(ctx context.Context, format, sortBy, direction string) ([]byte, string, error)
}
