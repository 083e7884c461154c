package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eyeradar/lexiquest/internal/aiclient"
	"github.com/eyeradar/lexiquest/internal/api"
	"github.com/eyeradar/lexiquest/internal/config"
	"github.com/eyeradar/lexiquest/internal/db"
	"github.com/eyeradar/lexiquest/internal/jobs"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/repository/sqlite"
	"github.com/eyeradar/lexiquest/internal/services"
	"github.com/eyeradar/lexiquest/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LexiQuest Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("checkpoint_interval=%d", cfg.CheckpointInterval)
	log.Debug("gamify_worker_count=%d", cfg.GamifyWorkerCount)
	log.Debug("gamify_queue_size=%d", cfg.GamifyQueueSize)
	log.Debug("ai_model=%s ai_enabled=%t", cfg.AIModel, cfg.AIAPIKey != "")

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	studentRepo := sqlite.NewStudentRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	adventureRepo := sqlite.NewAdventureRepository(database.DB)

	// Initialize the background worker pool for post-session processing
	gamifyPool := worker.NewPool(cfg.GamifyWorkerCount, cfg.GamifyQueueSize)

	// Initialize services
	aiClient := aiclient.New(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	gamificationService := services.NewGamificationService(studentRepo, sessionRepo)
	jobQueue := jobs.NewWorkerQueue(gamifyPool, gamificationService)
	studentService := services.NewStudentService(studentRepo)
	sessionService := services.NewSessionService(sessionRepo, studentRepo, jobQueue)
	mapService := services.NewMapService(studentRepo, sessionRepo, adventureRepo, services.MapConfig{
		CheckpointInterval: cfg.CheckpointInterval,
		MapWidth:           float64(cfg.MapWidth),
		MapHeight:          float64(cfg.MapHeight),
		OverworldWidth:     float64(cfg.OverworldWidth),
		OverworldHeight:    float64(cfg.OverworldHeight),
	})
	adventureService := services.NewAdventureService(adventureRepo, studentRepo, aiClient)
	analyticsService := services.NewAnalyticsService(studentRepo, sessionRepo)

	srv := &api.Server{
		DB:           database.DB,
		Students:     studentService,
		Sessions:     sessionService,
		Maps:         mapService,
		Adventures:   adventureService,
		Gamification: gamificationService,
		Analytics:    analyticsService,
	}

	ctx, cancel := context.WithCancel(context.Background())
	gamifyPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	gamifyPool.Stop()

	log.Info("===========================================")
	log.Info("LexiQuest Server Stopped")
	log.Info("===========================================")
}
