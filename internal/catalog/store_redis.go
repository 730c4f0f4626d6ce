// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ludexhq/ludex/internal/platform/constants"
)

// CachedRepository decorates a [Repository] with a Redis read-through cache
// for the artwork URL projection.
//
// The catalogue is mutated outside this service, so cached entries carry a
// short TTL rather than being invalidated. Point lookups and filtered lists
// pass straight through to the inner repository.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	logger *slog.Logger
}

// NewCachedRepository wraps inner with the artwork URL cache.
func NewCachedRepository(inner Repository, client *redis.Client, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

// GetByID delegates to the inner repository.
func (repository *CachedRepository) GetByID(context context.Context, id int64) (*Game, error) {
	return repository.inner.GetByID(context, id)
}

// List delegates to the inner repository.
func (repository *CachedRepository) List(context context.Context, filter Filter) ([]*Game, error) {
	return repository.inner.List(context, filter)
}

/*
GetArtworkURL returns the artwork URL for one record, consulting the cache first.

Description: A cache hit skips the database entirely. On a miss the inner
repository is queried and non-nil results are stored with
[constants.ArtworkCacheTTL]. Cache failures are logged and never fail the
read path; the database remains the source of truth.
*/
func (repository *CachedRepository) GetArtworkURL(context context.Context, id int64) (*string, error) {
	key := fmt.Sprintf("%s%d", constants.RedisPrefixArtwork, id)

	cached, err := repository.client.Get(context, key).Result()
	if err == nil {
		return &cached, nil
	}

	if !errors.Is(err, redis.Nil) {
		repository.logger.Warn("artwork_cache_read_failed",
			slog.Int64("game_id", id),
			slog.Any("error", err),
		)
	}

	artworkURL, err := repository.inner.GetArtworkURL(context, id)
	if err != nil {
		return nil, err
	}

	// Only concrete URLs are cached. Records without artwork and missing
	// records keep hitting the database so external edits show up promptly.
	if artworkURL != nil {
		if cacheErr := repository.client.Set(context, key, *artworkURL, constants.ArtworkCacheTTL).Err(); cacheErr != nil {
			repository.logger.Warn("artwork_cache_write_failed",
				slog.Int64("game_id", id),
				slog.Any("error", cacheErr),
			)
		}
	}

	return artworkURL, nil
}
