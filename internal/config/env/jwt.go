package env

import (
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"time"
)

const (
	secretKeyEnvName = "JWT_SECRET"
	leewayEnvName    = "JWT_LEEWAY"
)

type jwtConfig struct {
	secretKey string
	leeway    time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secretKey := os.Getenv(secretKeyEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("jwt secret key not found")
	}

	var leeway time.Duration
	if raw := os.Getenv(leewayEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid jwt leeway: %w", err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("jwt leeway must not be negative")
		}
		leeway = parsed
	}

	return &jwtConfig{
		secretKey: secretKey,
		leeway:    leeway,
	}, nil
}

func (j *jwtConfig) SecretKey() []byte {
	return []byte(j.secretKey)
}

func (j *jwtConfig) Leeway() time.Duration {
	return j.leeway
}
