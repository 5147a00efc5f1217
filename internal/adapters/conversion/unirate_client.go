// Package conversion implements the exchange-rate port against the UniRateAPI
// HTTP service.
package conversion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"collectbox/internal/apperrors"
	portssvc "collectbox/internal/core/ports/services"
	"collectbox/internal/observability/metrics"
	"github.com/shopspring/decimal"
)

// UniRateClient converts amounts between currencies using unirateapi.com.
type UniRateClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewUniRateClient creates a converter against the given API base URL.
func NewUniRateClient(baseURL, apiKey string, timeout time.Duration) *UniRateClient {
	return &UniRateClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ensure implementation matches interface
var _ portssvc.RateConverter = (*UniRateClient)(nil)

type convertResponse struct {
	Result *decimal.Decimal `json:"result"`
}

// Convert asks the rate provider to convert amount from one currency to
// another at the current rate. The provider's result is used as-is, without
// rounding.
func (c *UniRateClient) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (converted decimal.Decimal, err error) {
	start := time.Now()
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultError
		}
		metrics.ObserveConversion(result, time.Since(start))
	}()

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: conversion amount must be greater than 0, got %s", apperrors.ErrValidation, amount)
	}
	if fromCode == "" || toCode == "" {
		return decimal.Zero, fmt.Errorf("%w: conversion requires both source and target currency", apperrors.ErrValidation)
	}
	if fromCode == toCode {
		return amount, nil
	}

	reqURL, err := url.Parse(c.baseURL + "/api/convert")
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid conversion API URL: %v", apperrors.ErrConversion, err)
	}
	query := reqURL.Query()
	query.Set("api_key", c.apiKey)
	query.Set("amount", amount.String())
	query.Set("from", fromCode)
	query.Set("to", toCode)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to build conversion request: %v", apperrors.ErrConversion, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: conversion request failed: %v", apperrors.ErrConversion, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return decimal.Zero, fmt.Errorf("%w: conversion API rejected the API key", apperrors.ErrConversion)
	case resp.StatusCode != http.StatusOK:
		return decimal.Zero, fmt.Errorf("%w: conversion API returned status %d", apperrors.ErrConversion, resp.StatusCode)
	}

	var body convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to decode conversion response: %v", apperrors.ErrConversion, err)
	}
	if body.Result == nil {
		return decimal.Zero, fmt.Errorf("%w: conversion API returned no result for %s->%s", apperrors.ErrConversion, fromCode, toCode)
	}

	return *body.Result, nil
}
