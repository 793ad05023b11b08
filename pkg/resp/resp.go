package resp

import (
	"encoding/json"
	"net/http"
	"roulette_backend/internal/logger"

	"go.uber.org/zap"
)

// WriteJSONResponse - encodes v as the JSON body with the given status.
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to write json response", zap.Int("status", status), zap.Error(err))
	}
}
