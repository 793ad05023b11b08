package app

import (
	"context"
	gameAPI "roulette_backend/internal/api/game"
	"roulette_backend/internal/api/health"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/record_repo"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type ServiceProvider struct {
	// Configs
	httpCfg config.HTTPConfig
	jwtCfg  config.JWTConfig
	logCfg  config.LogConfig
	gameCfg config.GameConfig

	// Game bits
	engine     *game.Engine
	recordRepo repository.RecordRepository
	gameServ   service.GameService
	gameHand   *gameAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Engine() *game.Engine {
	if sp.engine == nil {
		cfg := sp.GameCfg()
		sp.engine = game.NewEngine(
			game.WithGames(cfg.Games()...),
			game.WithMaxBets(cfg.MaxBets()),
		)
	}
	return sp.engine
}

// RecordRepository is owned by the provider for the process lifetime
func (sp *ServiceProvider) RecordRepository() repository.RecordRepository {
	if sp.recordRepo == nil {
		sp.recordRepo = record_repo.NewRecordRepository()
	}
	return sp.recordRepo
}

func (sp *ServiceProvider) GameService() service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.Engine(), sp.RecordRepository())
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler() *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.ResponseTime)
		r.Use(middleware.Recovery)
		r.Use(metrics.HTTP)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id", "x-response-time"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.NotFound(health.NotFound)
		r.MethodNotAllowed(health.NotFound)

		r.Get("/teapot", health.Teapot)
		r.Handle("/metrics", metrics.Handler())

		// Game endpoints
		gameHandler := sp.GameHandler()
		r.Route("/game", func(rr chi.Router) {
			rr.Post("/check", gameHandler.Check)

			rr.Group(func(auth chi.Router) {
				jwtCfg := sp.JWTCfg()
				auth.Use(middleware.Authenticate(jwtCfg.SecretKey(), jwtCfg.Leeway()))
				auth.Post("/new", gameHandler.Play)
				auth.Get("/{id}", gameHandler.Get)
			})
		})

		sp.router = r
	}

	return sp.router
}
