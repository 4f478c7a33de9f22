package middlewares

import (
	"citamed-service/internal/app/config"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingSession(t *testing.T) {
	secret := "test-session-secret"
	middlewares := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{
				Secret:        secret,
				ExpTimeInHour: 24,
			},
		},
	}

	var seenBookingID string
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bookingID, ok := r.Context().Value(constvars.CONTEXT_BOOKING_ID_KEY).(string)
		assert.True(t, ok, "booking id should be set in context")
		seenBookingID = bookingID
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid session token", func(t *testing.T) {
		token, err := utils.GenerateBookingSessionJWT("booking-123", secret, 24)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.BookingSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "booking-123", seenBookingID)
	})

	t.Run("Missing Authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)

		rr := httptest.NewRecorder()
		middlewares.BookingSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Header without bearer prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "not-a-bearer-token")

		rr := httptest.NewRecorder()
		middlewares.BookingSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateBookingSessionJWT("booking-123", "wrong-secret", 24)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.BookingSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := utils.GenerateBookingSessionJWT("booking-123", secret, -1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.BookingSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
