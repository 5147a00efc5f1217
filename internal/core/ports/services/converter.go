package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateConverter converts a monetary amount between two currencies using an
// external rate source. Implementations must reject non-positive amounts and
// blank codes; any upstream failure surfaces as a conversion error.
type RateConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}
