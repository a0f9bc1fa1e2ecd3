package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"bookweb/internal/platform/bookapi"
)

type config struct {
	addr            string
	api             bookapi.Config
	rateLimitRPS    float64
	rateLimitBurst  int
	maxBodyBytes    int64
	shutdownTimeout time.Duration
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() (config, error) {
	cfg := config{
		addr: getEnv("APP_ADDR", ":8080"),
		api: bookapi.Config{
			BaseURL:   getEnv("BOOKS_API_BASE_URL", bookapi.DefaultBaseURL),
			UserAgent: getEnv("BOOKS_API_USER_AGENT", bookapi.DefaultUserAgent),
		},
		shutdownTimeout: 20 * time.Second,
	}

	var err error
	if cfg.api.Timeout, err = durationEnv("BOOKS_API_TIMEOUT", bookapi.DefaultTimeout); err != nil {
		return config{}, err
	}
	if cfg.api.RPS, err = floatEnv("BOOKS_API_RPS", 0); err != nil {
		return config{}, err
	}
	if cfg.api.InsecureSkipVerify, err = boolEnv("BOOKS_API_INSECURE_TLS", false); err != nil {
		return config{}, err
	}
	if cfg.rateLimitRPS, err = floatEnv("RATE_LIMIT_RPS", 10); err != nil {
		return config{}, err
	}
	burst, err := floatEnv("RATE_LIMIT_BURST", 20)
	if err != nil {
		return config{}, err
	}
	cfg.rateLimitBurst = int(burst)
	maxBody, err := floatEnv("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return config{}, err
	}
	cfg.maxBodyBytes = int64(maxBody)

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: want a positive duration like 15s", key, v)
	}
	return d, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative number", key, v)
	}
	return f, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: want true or false", key, v)
	}
	return b, nil
}
