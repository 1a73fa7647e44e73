package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"sigdash/adapters/ingest"
	"sigdash/internal/config"
	"sigdash/internal/sweep"
	"sigdash/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	reader := ingest.NewReader(cfg.Data.VotesFile, cfg.Data.RatingsFile)
	dataset, err := reader.ReadDataset(cfg.Data.DatasetName)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	runner := sweep.NewRunner(cfg.Sweep.MaxConcurrent)
	analyses, err := runner.Run(context.Background(), *dataset)
	if err != nil {
		log.Fatal("Failed to analyze dataset:", err)
	}

	app, err := ui.NewApp(ui.Config{
		Port:     cfg.Server.Port,
		Dataset:  *dataset,
		Analyses: analyses,
	})
	if err != nil {
		log.Fatal("Failed to create dashboard:", err)
	}

	log.Printf("Starting sigdash dashboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}
