package middlewares

import (
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// BookingSession resolves the booking session token into a booking ID. Every
// draft operation is scoped to the booking that issued the token, so a client
// can never read or mutate another session's draft.
func (m *Middlewares) BookingSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		bookingID, err := utils.ParseBookingSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_BOOKING_ID_KEY, bookingID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
