// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

// Package schema holds the table and column name definitions used by the
// PostgreSQL repositories. Centralizing the names keeps query construction
// free of magic strings.
package schema

// CatalogVideogameTable represents the 'catalog.videogame' table
type CatalogVideogameTable struct {
	Table      string
	ID         string
	Title      string
	Developer  string
	Publisher  string
	Genre      string
	Platform   string
	ArtworkURL string
	CreatedAt  string
}

// CatalogVideogame is the schema definition for catalog.videogame
var CatalogVideogame = CatalogVideogameTable{
	Table:      "catalog.videogame",
	ID:         "id",
	Title:      "title",
	Developer:  "developer",
	Publisher:  "publisher",
	Genre:      "genre",
	Platform:   "platform",
	ArtworkURL: "artworkurl",
	CreatedAt:  "createdat",
}

func (t CatalogVideogameTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Developer, t.Publisher, t.Genre, t.Platform,
		t.ArtworkURL, t.CreatedAt,
	}
}
