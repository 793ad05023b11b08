package middleware

import (
	"net/http"
	"roulette_backend/internal/logger"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/token"
	"strings"
	"time"

	"go.uber.org/zap"
)

const bearerScheme = "Bearer"

// Authenticate - verifies the bearer token and stores the caller's service id
// in the request context. Rejected requests never reach next.
func Authenticate(secretKey []byte, leeway time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authorize(r, secretKey, leeway)
			if err != nil {
				logger.WarnCtx(r.Context(), "request not authorized",
					zap.String("path", r.URL.Path),
					zap.String("kind", err.Kind.String()),
					zap.NamedError("cause", err.Err))
				http.Error(w, err.Error(), http.StatusForbidden)
				return
			}

			ctx := WithCallerID(r.Context(), claims.ServiceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authorize(r *http.Request, secretKey []byte, leeway time.Duration) (*model.ServiceClaims, *model.AuthorizationError) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return nil, &model.AuthorizationError{Kind: model.MissingHeader}
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return nil, &model.AuthorizationError{Kind: model.WrongScheme}
	}

	claims, err := token.VerifyToken(parts[1], secretKey, time.Now(), leeway)
	if err != nil {
		aErr, ok := err.(*model.AuthorizationError)
		if !ok {
			aErr = &model.AuthorizationError{Kind: model.MalformedToken, Err: err}
		}
		return nil, aErr
	}
	return claims, nil
}
