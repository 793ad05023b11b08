package repository

import (
	"context"
	"roulette_backend/internal/model"

	"github.com/google/uuid"
)

// RecordRepository - write-once store of played games, scoped by owning service.
type RecordRepository interface {
	Insert(ctx context.Context, record *model.ResultRecord) error
	// Get returns model.ErrNotFound when the record is absent or owned by another service
	Get(ctx context.Context, id uuid.UUID, serviceID string) (*model.ResultRecord, error)
	Len() int
}
