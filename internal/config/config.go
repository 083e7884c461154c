package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	CheckpointInterval int
	MapWidth           int
	MapHeight          int
	OverworldWidth     int
	OverworldHeight    int
	GamifyWorkerCount  int
	GamifyQueueSize    int
	AIBaseURL          string
	AIAPIKey           string
	AIModel            string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:lexiquest.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		CheckpointInterval: envIntOr("CHECKPOINT_INTERVAL", 2),
		MapWidth:           envIntOr("MAP_WIDTH", 1200),
		MapHeight:          envIntOr("MAP_HEIGHT", 750),
		OverworldWidth:     envIntOr("OVERWORLD_WIDTH", 1000),
		OverworldHeight:    envIntOr("OVERWORLD_HEIGHT", 500),
		GamifyWorkerCount:  envIntOr("GAMIFY_WORKER_COUNT", 2),
		GamifyQueueSize:    envIntOr("GAMIFY_QUEUE_SIZE", 64),
		AIBaseURL:          envOr("AI_BASE_URL", "https://api.openai.com/v1"),
		AIAPIKey:           envOr("AI_API_KEY", ""),
		AIModel:            envOr("AI_MODEL", "gpt-4o"),
	}
}

// Validate checks the configuration for values the server cannot start
// with. All problems are reported at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.CheckpointInterval < 1 {
		problems = append(problems, "CHECKPOINT_INTERVAL must be at least 1")
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		problems = append(problems, "MAP_WIDTH and MAP_HEIGHT must be positive")
	}
	if c.OverworldWidth <= 0 || c.OverworldHeight <= 0 {
		problems = append(problems, "OVERWORLD_WIDTH and OVERWORLD_HEIGHT must be positive")
	}
	if c.GamifyWorkerCount < 1 {
		problems = append(problems, "GAMIFY_WORKER_COUNT must be at least 1")
	}
	if c.GamifyQueueSize < 1 {
		problems = append(problems, "GAMIFY_QUEUE_SIZE must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
