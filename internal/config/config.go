package config

import (
	"roulette_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type JWTConfig interface {
	SecretKey() []byte
	Leeway() time.Duration
}

type LogConfig interface {
	Level() string
}

type GameConfig interface {
	Games() []model.GameVariant
	MaxBets() int
}
