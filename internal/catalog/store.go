// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog

import "context"

// Repository is the storage contract for the catalogue.
//
// Implementations: [PostgresRepository] (primary) and [CachedRepository]
// (Redis read-through decorator).
type Repository interface {
	// GetByID returns the single record with the given identifier.
	GetByID(context context.Context, id int64) (*Game, error)

	// List returns every record matching the filter, ordered by id.
	// An empty filter returns the full catalogue.
	List(context context.Context, filter Filter) ([]*Game, error)

	// GetArtworkURL projects only the artwork URL column for the record
	// with the given identifier. A nil result means the record exists but
	// carries no artwork.
	GetArtworkURL(context context.Context, id int64) (*string, error)
}
