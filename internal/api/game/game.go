package game

import (
	"errors"
	"net/http"
	dto "roulette_backend/internal/api/dto/game"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/logger"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Check - validates a wager request without drawing, 204 when it would be accepted
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GameRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.Check(r.Context(), converter.ToWagerRequest(payload)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Play - resolves and stores a wager request for the authenticated caller
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GameRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.serv.Play(r.Context(), converter.ToWagerRequest(payload))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayedGameResponse(*record))
}

// Get - returns a stored record owned by the caller
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid game id", http.StatusBadRequest)
		return
	}

	record, err := h.serv.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayedGameResponse(*record))
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		logger.ErrorCtx(r.Context(), "game request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
