package main

import (
	"database/sql"
	"delivery-sim-service/internal/adapters/cache"
	"delivery-sim-service/internal/adapters/repositories"
	"delivery-sim-service/internal/api"
	"delivery-sim-service/internal/config"
	"delivery-sim-service/internal/platform/db"
	"delivery-sim-service/internal/platform/logger"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the
// HTTP server.
func main() {
	log := logger.New("server")
	zlog.Logger = log

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(conn, cfg.SeedDir); err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	repo := repositories.NewSqliteFleetRepository(conn)
	store := repositories.NewSqliteSimulationStore(conn)

	routerCfg := api.RouterConfig{
		Repo:           repo,
		Store:          store,
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
	}

	// The Redis result cache is optional; the store alone is sufficient.
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		routerCfg.Cache = cache.NewRedisSimulationCache(client, cfg.RedisTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("simulation result cache enabled")
	}

	router := api.NewRouter(routerCfg)

	log.Info().Str("addr", cfg.Address).Msg("server listening")
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initAndSeed(conn *sql.DB, seedDir string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	// Seeding is skipped when no seed directory is present (e.g. prod).
	if _, err := os.Stat(seedDir); os.IsNotExist(err) {
		return nil
	}

	seed, err := repositories.LoadSeedCSV(seedDir)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.Seed(conn, seed); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
