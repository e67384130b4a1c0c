// Package config loads server and engine defaults from the
// environment, via godotenv.Load() followed by a round of env-var
// lookups with fallbacks, collected into a single struct.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-tunable value the server and CLI need.
type Config struct {
	ServerAddr string

	DataDir          string
	ActivationSheet  string
	DecaySheet       string
	LimitsSheet      string

	DatabaseURL string

	DefaultFluxNCm2S float64
	DefaultDepth     int

	RateLimitPerSecond float64
	RateLimitBurst     int

	LogFile  string
	LogLevel slog.Level
}

// Load reads .env (if present, silently ignored if not — this mirrors
// godotenv's own Load behavior when deployed where no .env file
// exists, e.g. a container with env vars injected directly) then
// environment variables, falling back to defaults tuned for a
// small-sample gamma counting lab.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddr: getEnv("NAA_ADDR", ":8080"),

		DataDir:         getEnv("NAA_DATA_DIR", "./data"),
		ActivationSheet: getEnv("NAA_ACTIVATION_SHEET", "Activation"),
		DecaySheet:      getEnv("NAA_DECAY_SHEET", "Decay"),
		LimitsSheet:     getEnv("NAA_LIMITS_SHEET", "Limits"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		DefaultFluxNCm2S: getEnvFloat("NAA_DEFAULT_FLUX", 1e13),
		DefaultDepth:     getEnvInt("NAA_DEFAULT_DEPTH", 6),

		RateLimitPerSecond: getEnvFloat("NAA_RATE_LIMIT_PER_SEC", 5),
		RateLimitBurst:     getEnvInt("NAA_RATE_LIMIT_BURST", 10),

		LogFile:  getEnv("NAA_LOG_FILE", "naa.log"),
		LogLevel: parseLogLevel(getEnv("NAA_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
