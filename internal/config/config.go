package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	DBName     string
	JWTSecret  string
	Port       string
	CORSOrigin string
	BcryptCost int
	TokenTTL   time.Duration
}

// Load reads configuration from the environment, with an optional .env file.
// JWT_SECRET and MONGODB_URI are required; the process must not start without them.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := Config{
		MongoURI:   os.Getenv("MONGODB_URI"),
		DBName:     envOr("DATABASE_NAME", "plantstore"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       envOr("PORT", "3000"),
		CORSOrigin: envOr("CORS_ORIGIN", "*"),
		BcryptCost: 10,
		TokenTTL:   time.Hour,
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGODB_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.New("BCRYPT_COST must be an integer")
		}
		cfg.BcryptCost = cost
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.New("TOKEN_TTL must be a duration, e.g. 1h")
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
