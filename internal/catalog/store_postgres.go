// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ludexhq/ludex/internal/platform/database/schema"
	"github.com/ludexhq/ludex/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed catalogue store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the projection shared by GetByID and List.
func selectColumns() string {
	table := schema.CatalogVideogame
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		table.ID, table.Title, table.Developer, table.Publisher,
		table.Genre, table.Platform, table.ArtworkURL)
}

/*
GetByID returns the single record with the given identifier.

Returns:
  - *Game: The hydrated record
  - error: apperr.NotFound when no row matches, storage errors otherwise
*/
func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.CatalogVideogame.Table, schema.CatalogVideogame.ID)

	game := &Game{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&game.ID, &game.Title, &game.Developer, &game.Publisher,
		&game.Genre, &game.Platform, &game.ArtworkURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Game")
	}

	return game, nil
}

/*
List returns every record matching the filter, ordered by id.

Description: The predicate is built dynamically as the AND of one
case-insensitive substring condition per present filter field. Filter values
are always bound parameters, never concatenated into the query text, and
LIKE metacharacters in them are escaped so they match literally.

Parameters:
  - context: context.Context
  - filter: Filter (optional substring constraints)

Returns:
  - []*Game: Matching records (possibly empty, never nil)
  - error: Storage errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Game, error) {
	query, args := buildListQuery(filter)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Game")
	}
	defer rows.Close()

	games := make([]*Game, 0)
	for rows.Next() {
		game := &Game{}
		if err := rows.Scan(
			&game.ID, &game.Title, &game.Developer, &game.Publisher,
			&game.Genre, &game.Platform, &game.ArtworkURL,
		); err != nil {
			return nil, dberr.Wrap(err, "Game")
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Game")
	}

	return games, nil
}

/*
GetArtworkURL projects only the artwork URL column for one record.

Returns:
  - *string: The artwork URL, nil when the record carries none
  - error: apperr.NotFound when no row matches, storage errors otherwise
*/
func (repository *PostgresRepository) GetArtworkURL(context context.Context, id int64) (*string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.CatalogVideogame.ArtworkURL, schema.CatalogVideogame.Table, schema.CatalogVideogame.ID)

	var artworkURL *string
	if err := repository.db.QueryRow(context, query, id).Scan(&artworkURL); err != nil {
		return nil, dberr.Wrap(err, "Game")
	}

	return artworkURL, nil
}

// # Dynamic Predicate Construction

// buildListQuery assembles the filtered list query and its bound arguments.
//
// Conditions are accumulated as (predicate fragment, bound value) pairs in a
// fixed field order so the generated placeholder numbers always align
// positionally with the argument slice.
func buildListQuery(filter Filter) (string, []any) {
	table := schema.CatalogVideogame

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), table.Table))

	conditions := []struct {
		column string
		value  string
	}{
		{table.Title, filter.Title},
		{table.Developer, filter.Developer},
		{table.Publisher, filter.Publisher},
		{table.Genre, filter.Genre},
		{table.Platform, filter.Platform},
	}

	separator := " WHERE "
	for _, condition := range conditions {
		if condition.value == "" {
			continue
		}

		queryBuilder.WriteString(separator)
		queryBuilder.WriteString(fmt.Sprintf(`%s ILIKE '%%' || $%d || '%%' ESCAPE '\'`, condition.column, argID))
		args = append(args, escapeLike(condition.value))
		argID++
		separator = " AND "
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", table.ID))

	return queryBuilder.String(), args
}

// likeEscaper neutralizes LIKE metacharacters so filter values match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes %, _ and \ in a substring filter value.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
