package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		CheckpointInterval: 2,
		MapWidth:           1200,
		MapHeight:          750,
		OverworldWidth:     1000,
		OverworldHeight:    500,
		GamifyWorkerCount:  2,
		GamifyQueueSize:    64,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidCheckpointInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval int
	}{
		{name: "zero interval", interval: 0},
		{name: "negative interval", interval: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.CheckpointInterval = tt.interval

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "CHECKPOINT_INTERVAL")
		})
	}
}

func TestValidate_InvalidCanvas(t *testing.T) {
	cfg := validConfig()
	cfg.MapWidth = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MAP_WIDTH")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:               "",
		DBPath:             "",
		LogLevel:           "INVALID",
		CheckpointInterval: 0,
		GamifyWorkerCount:  0,
		GamifyQueueSize:    0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "CHECKPOINT_INTERVAL")
	assert.Contains(t, errStr, "GAMIFY_WORKER_COUNT")
	assert.Contains(t, errStr, "GAMIFY_QUEUE_SIZE")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "CHECKPOINT_INTERVAL", "MAP_WIDTH", "MAP_HEIGHT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2, cfg.CheckpointInterval)
	assert.Equal(t, 1200, cfg.MapWidth)
	assert.Equal(t, 750, cfg.MapHeight)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("CHECKPOINT_INTERVAL", "3")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.CheckpointInterval)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CHECKPOINT_INTERVAL", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 2, cfg.CheckpointInterval)
}
