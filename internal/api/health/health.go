package health

import "net/http"

// Teapot - liveness probe
func Teapot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

// NotFound - fallback for unknown routes, empty body
func NotFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
