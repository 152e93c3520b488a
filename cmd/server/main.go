package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitchly/planner-api/internal/config"
	"github.com/hitchly/planner-api/internal/database"
	"github.com/hitchly/planner-api/internal/handlers"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load Configuration
	cfg := config.LoadConfig()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Connect to Database
	db := database.Connect(cfg)

	// Load the planner session from its slots
	session := planner.Open(store.New(db), cfg.SeedDemoData)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, session)

	// Start Server
	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
