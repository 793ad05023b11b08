package game

import (
	"context"
	"errors"
	"fmt"
	"roulette_backend/internal/logger"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	engine *Engine
	repo   repository.RecordRepository
}

// NewGameService wires the engine to the record store
func NewGameService(engine *Engine, repo repository.RecordRepository) service.GameService {
	return &serv{
		engine: engine,
		repo:   repo,
	}
}

func (s *serv) Check(ctx context.Context, req model.WagerRequest) error {
	if err := s.engine.Validate(req); err != nil {
		s.rejected(ctx, req, err)
		return err
	}
	return nil
}

func (s *serv) Play(ctx context.Context, req model.WagerRequest) (*model.ResultRecord, error) {
	serviceID, ok := middleware.CallerIDFromContext(ctx)
	if !ok {
		return nil, errors.New("service id not found in context")
	}

	record, err := s.engine.Play(req, serviceID)
	if err != nil {
		s.rejected(ctx, req, err)
		return nil, err
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store game %s: %w", record.ID, err)
	}

	metrics.RecordStored()
	metrics.RecordPlay(record)
	logger.InfoCtx(ctx, "game played",
		zap.String("uuid", record.ID.String()),
		zap.String("game", string(record.Game)),
		zap.String("service_id", serviceID),
		zap.String("result", record.Result),
		zap.Int("bets", len(record.Bets)))

	return record, nil
}

func (s *serv) Get(ctx context.Context, id uuid.UUID) (*model.ResultRecord, error) {
	serviceID, ok := middleware.CallerIDFromContext(ctx)
	if !ok {
		return nil, errors.New("service id not found in context")
	}
	return s.repo.Get(ctx, id, serviceID)
}

func (s *serv) rejected(ctx context.Context, req model.WagerRequest, err error) {
	var vErr *model.ValidationError
	if !errors.As(err, &vErr) {
		return
	}
	metrics.RecordRejected(vErr.Kind.String())
	logger.DebugCtx(ctx, "game request rejected",
		zap.String("game", string(req.Game)),
		zap.String("kind", vErr.Kind.String()),
		zap.Int("index", vErr.Index))
}
