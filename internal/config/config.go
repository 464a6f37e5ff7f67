package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	DBPath             string
	ServerPort         string
	LogLevel           string
	MaxUploadBytes     int64
	RemoteFetchTimeout time.Duration
	CORSAllowedOrigins []string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	maxUploadBytes, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil || maxUploadBytes <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %q", os.Getenv("MAX_UPLOAD_BYTES"))
	}

	remoteFetchTimeout, err := time.ParseDuration(getEnv("REMOTE_FETCH_TIMEOUT", "10s"))
	if err != nil || remoteFetchTimeout <= 0 {
		return nil, fmt.Errorf("invalid REMOTE_FETCH_TIMEOUT: %q", os.Getenv("REMOTE_FETCH_TIMEOUT"))
	}

	cfg := &Config{
		DBPath:             getEnv("DB_PATH", "gamelogs.db"),
		ServerPort:         getEnv("SERVER_PORT", "3333"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxUploadBytes:     maxUploadBytes,
		RemoteFetchTimeout: remoteFetchTimeout,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int64("max_upload_bytes", cfg.MaxUploadBytes).
		Dur("remote_fetch_timeout", cfg.RemoteFetchTimeout).
		Strs("cors_allowed_origins", cfg.CORSAllowedOrigins).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
