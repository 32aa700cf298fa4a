/**
* Name: 			config.go
* Description: 		환경 변수(.env 포함) 기반 서버 설정
* Workflow: 		.env 로드 -> 환경 변수 파싱 -> 값 검증
 */
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "swipedeck-dev-secret"

type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	Production     bool
	DeckSize       int
	SessionSecret  []byte
	TokenTTL       time.Duration
	SessionTTL     time.Duration
	DismissGrace   time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
	SwaggerEnabled bool
}

func Load() (Config, error) {
	// .env 파일이 없으면 환경 변수만 사용
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		Production:     os.Getenv("GO_ENV") == "production",
		AllowedOrigins: parseList(envOr("ALLOWED_ORIGINS", "*")),
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.DeckSize, err = intEnv("DECK_SIZE", 12); err != nil {
		return Config{}, err
	}
	if c.DeckSize < 1 || c.DeckSize > 100 {
		return Config{}, fmt.Errorf("DECK_SIZE must be within 1..100, got %d", c.DeckSize)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		if c.Production {
			return Config{}, fmt.Errorf("SESSION_SECRET is required when GO_ENV=production")
		}
		secret = devSecret
	}
	c.SessionSecret = []byte(secret)

	for _, d := range []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"TOKEN_TTL", 24 * time.Hour, &c.TokenTTL},
		{"SESSION_TTL", 30 * time.Minute, &c.SessionTTL},
		{"DISMISS_GRACE", 250 * time.Millisecond, &c.DismissGrace},
	} {
		if *d.dst, err = durationEnv(d.key, d.fallback); err != nil {
			return Config{}, err
		}
	}
	if c.TokenTTL <= 0 || c.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL and SESSION_TTL must be positive")
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		c.RateLimitRPS = rps
	} else {
		c.RateLimitRPS = 2
	}
	if c.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", 5); err != nil {
		return Config{}, err
	}
	if c.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}

	if c.SwaggerEnabled, err = strconv.ParseBool(envOr("SWAGGER_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("invalid SWAGGER_ENABLED: %w", err)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
