package middleware

import (
	"net/http"
	"roulette_backend/internal/logger"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const responseTimeHeader = "x-response-time"

// ResponseTime sets "x-response-time: N us" and logs the request once it is served.
// The header is stamped right before the status line goes out.
func ResponseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
		tw.stamp()

		status := tw.status
		if status == 0 {
			status = http.StatusOK
		}
		logger.InfoCtx(r.Context(), "request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(tw.start)))
	})
}

type timedWriter struct {
	http.ResponseWriter
	start  time.Time
	status int
}

func (tw *timedWriter) stamp() {
	if tw.status != 0 {
		return
	}
	elapsed := strconv.FormatInt(time.Since(tw.start).Microseconds(), 10) + " us"
	tw.Header().Set(responseTimeHeader, elapsed)
}

func (tw *timedWriter) WriteHeader(code int) {
	tw.stamp()
	tw.status = code
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timedWriter) Write(b []byte) (int, error) {
	if tw.status == 0 {
		tw.WriteHeader(http.StatusOK)
	}
	return tw.ResponseWriter.Write(b)
}

func (tw *timedWriter) Unwrap() http.ResponseWriter {
	return tw.ResponseWriter
}
