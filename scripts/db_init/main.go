package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/vertiport/evtolhub/db"
	"github.com/vertiport/evtolhub/internal/config"
	"github.com/vertiport/evtolhub/internal/db"
	"github.com/vertiport/evtolhub/internal/repository/sqlite"
	"github.com/vertiport/evtolhub/internal/seed"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	repo := sqlite.New(database)
	if err := seed.Run(ctx, repo, repo, repo, repo); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized successfully.")
}
