package middlewares

import (
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// RequireAPIKey guards administrative endpoints (directory deletes, schedule
// registration) behind the configured admin API key.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" || apiKey != m.InternalConfig.App.AdminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
