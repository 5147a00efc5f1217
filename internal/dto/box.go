package dto

import (
	"collectbox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssignBoxRequest defines the data needed to assign a box to an event.
type AssignBoxRequest struct {
	EventID int64 `json:"eventID" binding:"required"`
}

// AddMoneyRequest defines a deposit into a collection box.
// The amount is validated by the service so that a zero or negative value
// surfaces as an invalid-amount error rather than a generic binding failure.
type AddMoneyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount"`
}

// CollectionBoxResponse describes a box with its derived flags.
type CollectionBoxResponse struct {
	BoxID    int64 `json:"boxID"`
	Assigned bool  `json:"assigned"`
	Empty    bool  `json:"empty"`
}

// ListBoxesResponse is a page of boxes.
type ListBoxesResponse struct {
	Boxes         []CollectionBoxResponse `json:"boxes"`
	Page          int                     `json:"page"`
	Size          int                     `json:"size"`
	TotalElements int64                   `json:"totalElements"`
}

// SettlementResponse summarises a successful box emptying.
type SettlementResponse struct {
	BoxID            int64           `json:"boxID"`
	EventID          int64           `json:"eventID"`
	CurrencyCode     string          `json:"currencyCode"`
	TotalTransferred decimal.Decimal `json:"totalTransferred"`
}

// ToCollectionBoxResponse converts a domain box to its response DTO.
func ToCollectionBoxResponse(box *domain.CollectionBox) CollectionBoxResponse {
	return CollectionBoxResponse{
		BoxID:    box.BoxID,
		Assigned: box.IsAssigned(),
		Empty:    box.IsEmpty(),
	}
}

// ToListBoxesResponse converts a page of domain boxes to the list DTO.
func ToListBoxesResponse(boxes []domain.CollectionBox, page, size int, total int64) ListBoxesResponse {
	res := make([]CollectionBoxResponse, len(boxes))
	for i, b := range boxes {
		res[i] = ToCollectionBoxResponse(&b)
	}
	return ListBoxesResponse{Boxes: res, Page: page, Size: size, TotalElements: total}
}

// ToSettlementResponse converts a domain settlement summary to its DTO.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		BoxID:            s.BoxID,
		EventID:          s.EventID,
		CurrencyCode:     s.CurrencyCode,
		TotalTransferred: s.TotalTransferred,
	}
}
