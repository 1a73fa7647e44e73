package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"sigdash/adapters/api"
	"sigdash/adapters/postgres"
	"sigdash/internal/config"
	"sigdash/internal/migration"
	"sigdash/internal/sweep"
	"sigdash/ports"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Persistence is optional: without DATABASE_URL the API runs stateless.
	var datasets ports.DatasetRepository
	var results ports.ResultRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := migration.Run(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		datasets = postgres.NewDatasetRepository(db)
		results = postgres.NewResultRepository(db)
	} else {
		log.Println("DATABASE_URL not set; running without persistence")
	}

	server := api.NewServer(sweep.NewRunner(cfg.Sweep.MaxConcurrent), datasets, results)

	log.Printf("Starting sigdash API on http://localhost:%s", cfg.Server.APIPort)
	log.Fatal(server.Run(":" + cfg.Server.APIPort))
}
