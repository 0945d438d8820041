package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"linkcare-service/internal/app/services/shared/jwtmanager"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/utils"
)

const (
	apiKeySubject    = "api-key"
	anonymousSubject = "anonymous"
)

// Authenticate accepts either the configured API key in X-API-Key or a
// bearer token signed with the configured secret. When neither is
// configured every request passes.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := m.InternalConfig.Auth
		if auth.APIKey == "" && m.JWTManager == nil {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_AUTH_SUBJECT_KEY, anonymousSubject)))
			return
		}

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		if apiKey := r.Header.Get(constvars.HeaderAPIKey); apiKey != "" {
			if auth.APIKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(auth.APIKey)) != 1 {
				m.Log.Warn("Middlewares.Authenticate invalid API key",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_AUTH_SUBJECT_KEY, apiKeySubject)))
			return
		}

		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.AuthBearerPrefix) || m.JWTManager == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCredentialsMissing(nil))
			return
		}

		verified, err := m.JWTManager.VerifyToken(r.Context(), &jwtmanager.VerifyTokenInput{
			Token: strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthBearerPrefix)),
		})
		if err != nil || !verified.Valid {
			m.Log.Warn("Middlewares.Authenticate invalid bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_AUTH_SUBJECT_KEY, verified.Subject)))
	})
}
