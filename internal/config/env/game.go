package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"roulette_backend/internal/config"
	"roulette_backend/internal/model"
	"roulette_backend/internal/odds"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigPathEnvName = "GAME_CONFIG_PATH"
	defaultGameConfigPath = "config.yaml"
	defaultMaxBets        = 100
)

type gameFile struct {
	Games   []string `yaml:"games"`
	MaxBets int      `yaml:"max_bets"`
}

type gameConfig struct {
	games   []model.GameVariant
	maxBets int
}

// GameConfigPath - GAME_CONFIG_PATH or config.yaml
func GameConfigPath() string {
	if path := os.Getenv(gameConfigPathEnvName); len(path) != 0 {
		return path
	}
	return defaultGameConfigPath
}

// NewGameConfigFromYAML reads the game section file; a missing file yields the defaults.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg := &gameConfig{
		games:   []model.GameVariant{model.EuropeanRoulette},
		maxBets: defaultMaxBets,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if file.MaxBets < 0 {
		return nil, fmt.Errorf("max_bets must not be negative, got %d", file.MaxBets)
	}
	if file.MaxBets > 0 {
		cfg.maxBets = file.MaxBets
	}

	if len(file.Games) > 0 {
		cfg.games = cfg.games[:0]
		for _, name := range file.Games {
			variant := model.GameVariant(name)
			if _, ok := odds.For(variant); !ok {
				return nil, fmt.Errorf("unknown game %q", name)
			}
			cfg.games = append(cfg.games, variant)
		}
	}

	return cfg, nil
}

func (cfg *gameConfig) Games() []model.GameVariant {
	return append([]model.GameVariant(nil), cfg.games...)
}

func (cfg *gameConfig) MaxBets() int {
	return cfg.maxBets
}
