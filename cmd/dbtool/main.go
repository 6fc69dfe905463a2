package main

import (
	"context"
	"delivery-sim-service/internal/adapters/repositories"
	"delivery-sim-service/internal/platform/db"
	"delivery-sim-service/internal/platform/logger"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema and seeds it from the CSV files.
// The HTTP server runs against SQLite by default; this tool targets shared
// Postgres environments.
func main() {
	log := logger.New("dbtool")

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	seedDir := os.Getenv("SEED_DIR")
	if seedDir == "" {
		seedDir = "data/seeds"
	}

	conn, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer conn.Close()

	ctx := context.Background()

	log.Info().Msg("initializing database schema")
	if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	log.Info().Str("dir", seedDir).Msg("seeding database")
	seed, err := repositories.LoadSeedCSV(seedDir)
	if err != nil {
		log.Fatal().Err(err).Msg("loading seed files failed")
	}
	if err := repositories.SeedPostgres(ctx, conn, seed); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().
		Int("drivers", len(seed.Drivers)).
		Int("routes", len(seed.Routes)).
		Int("orders", len(seed.Orders)).
		Msg("seeding complete")
}
