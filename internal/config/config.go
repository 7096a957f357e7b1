package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken           string
	OwnerTGID          int64
	LogLevel           string
	LogFormat          string
	PollTimeoutSeconds int
	CommandPrefix      string
	DatabaseURL        string
	MongoURL           string
	MongoDatabase      string
	LedgerMode         string
	AuditChannel       string
}

func Load() (Config, error) {
	ownerTGID, err := getInt64("OWNER_TG_ID", 0)
	if err != nil {
		return Config{}, err
	}

	pollTimeout, err := getInt("POLL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BotToken:           strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		OwnerTGID:          ownerTGID,
		LogLevel:           getString("LOG_LEVEL", "info"),
		LogFormat:          getString("LOG_FORMAT", "text"),
		PollTimeoutSeconds: pollTimeout,
		CommandPrefix:      getString("COMMAND_PREFIX", "/"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MongoURL:           strings.TrimSpace(os.Getenv("MONGO_URL")),
		MongoDatabase:      getString("MONGO_DATABASE", "guardian"),
		LedgerMode:         getString("LEDGER_MODE", "dual"),
		AuditChannel:       getString("AUDIT_CHANNEL", "message-logs"),
	}

	if cfg.PollTimeoutSeconds <= 0 {
		cfg.PollTimeoutSeconds = 30
	}

	return cfg, nil
}

func (c Config) IsMongoEnabled() bool {
	return strings.TrimSpace(c.MongoURL) != ""
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getInt64(key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
