package conversion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collectbox/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*UniRateClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewUniRateClient(server.URL, "test-key", 5*time.Second)
	return client, server
}

func TestConvert_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/convert", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "50", r.URL.Query().Get("amount"))
		assert.Equal(t, "EUR", r.URL.Query().Get("from"))
		assert.Equal(t, "USD", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": 54.00}`))
	})
	defer server.Close()

	got, err := client.Convert(context.Background(), decimal.NewFromInt(50), "EUR", "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(54.00)), "got %s", got)
}

func TestConvert_SameCurrencySkipsAPI(t *testing.T) {
	called := false
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	got, err := client.Convert(context.Background(), decimal.NewFromInt(10), "USD", "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10)))
	assert.False(t, called)
}

func TestConvert_Unauthorized(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer server.Close()

	_, err := client.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversion))
	assert.Contains(t, err.Error(), "API key")
}

func TestConvert_ServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversion))
}

func TestConvert_MissingResult(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "no rate"}`))
	})
	defer server.Close()

	_, err := client.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversion))
}

func TestConvert_InvalidInputs(t *testing.T) {
	client := NewUniRateClient("http://localhost:0", "test-key", time.Second)

	_, err := client.Convert(context.Background(), decimal.NewFromInt(1), "", "USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = client.Convert(context.Background(), decimal.Zero, "EUR", "USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = client.Convert(context.Background(), decimal.NewFromInt(-3), "EUR", "USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
