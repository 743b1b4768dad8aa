package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/api"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/config"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/database"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/logger"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/monitoring"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/services"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/store"
	"github.com/MiaFate/boilerplate-project-exercisetracker/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Set up database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.DatabaseURL).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}
	st := store.NewSQLStore(db)

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	userService := services.NewUserService(st, hub)
	exerciseService := services.NewExerciseService(st, st, hub)

	// Set up the background stats reporter
	reporter := monitoring.NewStatsReporter(st, hub, cfg.StatsSchedule)
	if err := reporter.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start stats reporter")
	}

	router := api.NewRouter(cfg, hub, userService, exerciseService)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Your app is listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	reporter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
