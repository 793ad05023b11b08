package middleware

import (
	"fmt"
	"net/http"
	"roulette_backend/internal/logger"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recovery turns a panic in a handler into a 500
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorCtx(r.Context(), "panic recovered",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("error", fmt.Sprint(rec)),
					zap.String("stack", string(debug.Stack())))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
