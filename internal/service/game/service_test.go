package game

import (
	"context"
	"errors"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/record_repo"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGameService_PlayStoresRecord(t *testing.T) {
	ctx := middleware.WithCallerID(context.Background(), "svc-a")
	mockRepo := new(MockRecordRepository)
	s := NewGameService(fixedEngine("00"), mockRepo)

	mockRepo.On("Insert", ctx, mock.MatchedBy(func(r *model.ResultRecord) bool {
		return r.ServiceID == "svc-a" && r.Result == "00" && *r.Bets[0].ChipsOut == 360
	})).Return(nil)

	record, err := s.Play(ctx, singleBet("00", 10))

	require.NoError(t, err)
	assert.Equal(t, "svc-a", record.ServiceID)
	mockRepo.AssertExpectations(t)
}

// storedRecordsGauge reads the store gauge from the default registry
func storedRecordsGauge(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "roulette_stored_records" {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("roulette_stored_records not registered")
	return 0
}

func TestGameService_StoredRecordsGaugeUnderConcurrentPlays(t *testing.T) {
	repo := record_repo.NewRecordRepository()
	s := NewGameService(NewEngine(), repo)
	ctx := middleware.WithCallerID(context.Background(), "svc-a")
	before := storedRecordsGauge(t)

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Play(ctx, singleBet("RED", 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, repo.Len())
	assert.Equal(t, before+n, storedRecordsGauge(t))
}

func TestGameService_PlayInvalidDoesNotStore(t *testing.T) {
	ctx := middleware.WithCallerID(context.Background(), "svc-a")
	mockRepo := new(MockRecordRepository)
	s := NewGameService(fixedEngine("00"), mockRepo)

	record, err := s.Play(ctx, singleBet("bogus", 10))

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, model.UnrecognizedSelector, vErr.Kind)
	assert.Nil(t, record)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGameService_PlayStoreFailure(t *testing.T) {
	ctx := middleware.WithCallerID(context.Background(), "svc-a")
	mockRepo := new(MockRecordRepository)
	s := NewGameService(fixedEngine("00"), mockRepo)
	storeErr := errors.New("store down")

	mockRepo.On("Insert", ctx, mock.Anything).Return(storeErr)

	_, err := s.Play(ctx, singleBet("00", 10))
	assert.ErrorIs(t, err, storeErr)
}

func TestGameService_RequiresCaller(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	s := NewGameService(fixedEngine("00"), mockRepo)

	_, err := s.Play(context.Background(), singleBet("00", 10))
	assert.Error(t, err)

	_, err = s.Get(context.Background(), uuid.New())
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGameService_Check(t *testing.T) {
	s := NewGameService(fixedEngine("00"), new(MockRecordRepository))

	assert.NoError(t, s.Check(context.Background(), singleBet("00", 10)))

	var vErr *model.ValidationError
	require.ErrorAs(t, s.Check(context.Background(), singleBet("00", 0)), &vErr)
	assert.Equal(t, model.ZeroStake, vErr.Kind)
}

func TestGameService_GetIsScopedToCaller(t *testing.T) {
	s := NewGameService(NewEngine(), record_repo.NewRecordRepository())
	owner := middleware.WithCallerID(context.Background(), "svc-a")
	other := middleware.WithCallerID(context.Background(), "svc-b")

	record, err := s.Play(owner, singleBet("RED", 10))
	require.NoError(t, err)

	got, err := s.Get(owner, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = s.Get(other, record.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = s.Get(owner, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
