package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdedetrich/stripe-go/internal/client"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// newTestClient starts an httptest server around the handler and returns a
// client pointed at it. Retries are disabled so every test sees exactly one
// request per call.
func newTestClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&stripe.Config{
		APIKey:    "sk_test_123",
		Endpoint:  server.URL,
		NoRetries: true,
	})
	require.NoError(t, err)

	return apiClient
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	err := json.NewEncoder(writer).Encode(body)
	require.NoError(t, err)
}

func writeAPIError(t *testing.T, writer http.ResponseWriter, status int, errType stripe.ErrorType, code stripe.ErrorCode, message string) {
	t.Helper()

	writeJSON(t, writer, status, map[string]interface{}{
		"error": map[string]interface{}{
			"type":    errType,
			"code":    code,
			"message": message,
		},
	})
}
