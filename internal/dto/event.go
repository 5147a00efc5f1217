package dto

import (
	"collectbox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the data needed to create a fundraising event.
type CreateEventRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
}

// FundraisingEventResponse defines the data returned for an event.
// The balance is rounded half-up to 2 decimal places for display.
type FundraisingEventResponse struct {
	EventID        int64           `json:"eventID"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
}

// FinancialReportEntry is one row of the financial report.
type FinancialReportEntry struct {
	EventName    string          `json:"eventName"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// FinancialReportResponse is a page of the financial report.
type FinancialReportResponse struct {
	Entries       []FinancialReportEntry `json:"entries"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"totalElements"`
}

// ToFundraisingEventResponse converts a domain event to its response DTO.
func ToFundraisingEventResponse(event *domain.FundraisingEvent) FundraisingEventResponse {
	return FundraisingEventResponse{
		EventID:        event.EventID,
		Name:           event.Name,
		CurrencyCode:   event.CurrencyCode,
		AccountBalance: event.DisplayBalance(),
	}
}

// ToFinancialReportResponse converts a page of domain events to report rows.
func ToFinancialReportResponse(events []domain.FundraisingEvent, page, size int, total int64) FinancialReportResponse {
	entries := make([]FinancialReportEntry, len(events))
	for i, e := range events {
		entries[i] = FinancialReportEntry{
			EventName:    e.Name,
			Amount:       e.DisplayBalance(),
			CurrencyCode: e.CurrencyCode,
		}
	}
	return FinancialReportResponse{Entries: entries, Page: page, Size: size, TotalElements: total}
}
