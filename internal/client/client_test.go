package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdedetrich/stripe-go/internal/client"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&stripe.Config{Endpoint: "https://api.example.com"})
		require.ErrorIs(t, err, stripe.ErrAPIKeyRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&stripe.Config{APIKey: "sk_test_123"})
		require.ErrorIs(t, err, stripe.ErrEndpointRequired)
	})

	t.Run("resource clients are wired", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&stripe.Config{APIKey: "sk_test_123", Endpoint: "https://api.example.com"})
		require.NoError(t, err)
		assert.NotNil(t, apiClient.Charges())
		assert.NotNil(t, apiClient.Customers())
		assert.NotNil(t, apiClient.Transfers())
	})
}

func TestGetBalance(t *testing.T) {
	t.Parallel()
	t.Run("successful get", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "/v1/balance", request.URL.Path)
			assert.Empty(t, request.Header.Get("Idempotency-Key"))

			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"object":   "balance",
				"livemode": false,
				"available": []map[string]interface{}{
					{"amount": 12000, "currency": "usd"},
				},
				"pending": []map[string]interface{}{
					{"amount": 500, "currency": "usd"},
				},
			})
		}))

		balance, err := apiClient.GetBalance(context.Background())
		require.NoError(t, err)
		require.Len(t, balance.Available, 1)
		assert.Equal(t, int64(12000), balance.Available[0].Amount)
		assert.Equal(t, stripe.USD, balance.Available[0].Currency)
		require.Len(t, balance.Pending, 1)
		assert.Equal(t, int64(500), balance.Pending[0].Amount)
	})

	t.Run("authentication error", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writeAPIError(t, writer, http.StatusUnauthorized,
				stripe.ErrorTypeAuthentication, "", "Invalid API key provided")
		}))

		_, err := apiClient.GetBalance(context.Background())
		require.Error(t, err)
		assert.True(t, stripe.IsAuthenticationError(err))
	})
}
