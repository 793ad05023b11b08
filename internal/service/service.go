package service

import (
	"context"
	"roulette_backend/internal/model"

	"github.com/google/uuid"
)

type GameService interface {
	// Check validates a request without playing it
	Check(ctx context.Context, req model.WagerRequest) error
	// Play resolves the request for the calling service and stores the result
	Play(ctx context.Context, req model.WagerRequest) (*model.ResultRecord, error)
	// Get returns a stored result owned by the calling service
	Get(ctx context.Context, id uuid.UUID) (*model.ResultRecord, error)
}
