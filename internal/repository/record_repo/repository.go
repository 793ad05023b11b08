package record_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"sync"

	"github.com/google/uuid"
)

// Volatile record store. Nothing is evicted, the map grows
// for the lifetime of the process.
type repo struct {
	mtx     sync.RWMutex
	records map[uuid.UUID]*model.ResultRecord
}

// NewRecordRepository creates an empty store
func NewRecordRepository() repository.RecordRepository {
	return &repo{
		records: make(map[uuid.UUID]*model.ResultRecord),
	}
}

// Insert - stores a copy of the record under its ID.
// IDs are generated per play, a collision simply replaces the entry.
func (r *repo) Insert(ctx context.Context, record *model.ResultRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := record.Clone()

	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.records[stored.ID] = stored
	return nil
}

// Get - returns a copy of the record if it is owned by serviceID.
// A record owned by someone else looks exactly like a missing one.
func (r *repo) Get(ctx context.Context, id uuid.UUID, serviceID string) (*model.ResultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	record, ok := r.records[id]
	if !ok || record.ServiceID != serviceID {
		return nil, model.ErrNotFound
	}
	return record.Clone(), nil
}

// Len - number of stored records
func (r *repo) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.records)
}
