package payments

import (
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPayment(t *testing.T) {
	paymentRequest := &requests.ProcessPayment{
		Amount:      5000,
		Currency:    "usd",
		Description: "Pago de cita con Luis Pérez",
		Token:       "tok_simulado_123456",
	}

	t.Run("successful payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/process-payment", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var received requests.ProcessPayment
			require.NoError(t, json.Unmarshal(body, &received))
			assert.Equal(t, 5000, received.Amount)
			assert.Equal(t, "tok_simulado_123456", received.Token)

			w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		client := NewPaymentClient(server.URL, 5*time.Second)
		require.NoError(t, client.ProcessPayment(context.Background(), paymentRequest))
	})

	t.Run("declined payment detail passes through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Fondos insuficientes"}`))
		}))
		defer server.Close()

		client := NewPaymentClient(server.URL, 5*time.Second)
		err := client.ProcessPayment(context.Background(), paymentRequest)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "Fondos insuficientes", customErr.ClientMessage)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"pending"}`))
		}))
		defer server.Close()

		client := NewPaymentClient(server.URL, 5*time.Second)
		err := client.ProcessPayment(context.Background(), paymentRequest)
		require.Error(t, err)
	})
}
