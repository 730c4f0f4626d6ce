// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

// Command seed loads a starter data set into the catalogue table.
//
// The API itself has no write path; records normally arrive through the
// external ingestion pipeline. This tool stands in for that pipeline during
// local development and demos.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ludexhq/ludex/internal/platform/config"
	"github.com/ludexhq/ludex/internal/platform/database/schema"
)

type seedGame struct {
	title      string
	developer  string
	publisher  string
	genre      string
	platform   string
	artworkURL *string
}

func artwork(url string) *string { return &url }

var seedGames = []seedGame{
	{"The Legend of Zelda: Breath of the Wild", "Nintendo EPD", "Nintendo", "Action-adventure", "Switch", artwork("https://img.ludex.gg/botw.png")},
	{"Hollow Knight", "Team Cherry", "Team Cherry", "Metroidvania", "PC", artwork("https://img.ludex.gg/hollow-knight.png")},
	{"Hades", "Supergiant Games", "Supergiant Games", "Roguelike", "PC", artwork("https://img.ludex.gg/hades.png")},
	{"Super Mario Odyssey", "Nintendo EPD", "Nintendo", "Platformer", "Switch", artwork("https://img.ludex.gg/mario-odyssey.png")},
	{"Disco Elysium", "ZA/UM", "ZA/UM", "RPG", "PC", nil},
	{"Celeste", "Maddy Makes Games", "Maddy Makes Games", "Platformer", "Switch", artwork("https://img.ludex.gg/celeste.png")},
	{"Half-Life 2", "Valve", "Valve", "FPS", "PC", nil},
	{"Bloodborne", "FromSoftware", "Sony Interactive Entertainment", "Action RPG", "PS4", artwork("https://img.ludex.gg/bloodborne.png")},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "ludex-seed"))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The API's managed pool opens read-only sessions, so the seeder builds
	// its own writable pool from the same DATABASE_URL.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("connect to postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Error("ping postgres", slog.Any("error", err))
		os.Exit(1)
	}

	table := schema.CatalogVideogame
	insert := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		table.Table, table.Title, table.Developer, table.Publisher,
		table.Genre, table.Platform, table.ArtworkURL,
	)

	inserted := 0
	for _, game := range seedGames {
		if _, err := pool.Exec(ctx, insert,
			game.title, game.developer, game.publisher,
			game.genre, game.platform, game.artworkURL,
		); err != nil {
			log.Error("insert failed", slog.String("title", game.title), slog.Any("error", err))
			os.Exit(1)
		}
		inserted++
	}

	var total int
	if err := pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table.Table)).Scan(&total); err != nil {
		log.Error("count failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("seed complete", slog.Int("inserted", inserted), slog.Int("total", total))
}
