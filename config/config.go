package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv         string
	AppPort        string
	AllowedOrigins string
	LogLevel       string
	NatsEnabled    bool
	NatsURL        string
	SeedDemoNotes  bool
	SeedNoteCount  int
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Debugf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warnf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Warnf("Invalid boolean value for %s, defaulting to %t", key, defaultValue)
	}
	return defaultValue
}

func Load() Config {
	// A .env file is optional and never overrides real environment variables.
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded configuration from .env")
	}

	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		NatsEnabled:    getEnvAsBool("NATS_ENABLED", false),
		NatsURL:        getEnv("NATS_URL", "nats://localhost:4222"),
		SeedDemoNotes:  getEnvAsBool("SEED_DEMO_NOTES", false),
		SeedNoteCount:  getEnvAsInt("SEED_NOTE_COUNT", 12),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
