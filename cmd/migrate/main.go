package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"sigdash/internal/config"
	"sigdash/internal/migration"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal(err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migrations applied")
}
