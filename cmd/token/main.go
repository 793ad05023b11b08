// Command token mints a bearer token for a service id, signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/pkg/token"
	"time"
)

func main() {
	serviceID := flag.String("service", "", "service id to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	envFile := flag.String("env", ".env", "dotenv file to load before reading JWT_SECRET")
	flag.Parse()

	_ = config.Load(*envFile)

	jwtCfg, err := env.NewJWTConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tok, err := token.GenerateServiceToken(*serviceID, jwtCfg.SecretKey(), *ttl, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
