// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludexhq/ludex/internal/catalog"
	"github.com/ludexhq/ludex/internal/platform/apperr"
	"github.com/ludexhq/ludex/internal/platform/constants"
)

// unreachableRedis returns a client whose every command fails fast. The
// decorator must treat the cache as optional, so these tests verify the
// database path keeps working when Redis is down.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     100 * time.Millisecond,
		ReadTimeout:     100 * time.Millisecond,
		WriteTimeout:    100 * time.Millisecond,
		MaxRetries:      -1,
		PoolTimeout:     100 * time.Millisecond,
		MinIdleConns:    0,
		ConnMaxIdleTime: time.Second,
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestCachedRepository_Passthrough verifies that point lookups and filtered
lists delegate straight to the inner repository.
*/
func TestCachedRepository_Passthrough(t *testing.T) {
	inner := seededRepository()
	client := unreachableRedis()
	defer client.Close()

	cached := catalog.NewCachedRepository(inner, client, discardLogger())

	game, err := cached.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Super Game", game.Title)

	games, err := cached.List(context.Background(), catalog.Filter{Platform: "pc"})
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

/*
TestCachedRepository_ArtworkFallsBackWhenCacheDown verifies that artwork
lookups survive a dead cache: both the read miss and the write-back failure
are logged and swallowed below the read path.
*/
func TestCachedRepository_ArtworkFallsBackWhenCacheDown(t *testing.T) {
	inner := seededRepository()
	client := unreachableRedis()
	defer client.Close()

	cached := catalog.NewCachedRepository(inner, client, discardLogger())

	artworkURL, err := cached.GetArtworkURL(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, artworkURL)
	assert.Equal(t, "https://img.ludex.gg/1.png", *artworkURL)

	// Records without artwork still report nil, not an error.
	artworkURL, err = cached.GetArtworkURL(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, artworkURL)
}

/*
TestCachedRepository_ArtworkNotFoundPropagates verifies that a missing record
is reported as not-found, never masked by the cache layer.
*/
func TestCachedRepository_ArtworkNotFoundPropagates(t *testing.T) {
	inner := seededRepository()
	client := unreachableRedis()
	defer client.Close()

	cached := catalog.NewCachedRepository(inner, client, discardLogger())

	_, err := cached.GetArtworkURL(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// liveRedis spins up an in-process Redis and a client pointed at it, so the
// read-through contract (keys, TTLs, write-back) can be asserted directly.
func liveRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

/*
TestCachedRepository_ArtworkMissPopulatesCache verifies the write-back half
of the read-through decorator: a miss queries the database and stores the
URL under the catalogue key with the configured expiry.
*/
func TestCachedRepository_ArtworkMissPopulatesCache(t *testing.T) {
	server, client := liveRedis(t)
	inner := seededRepository()
	cached := catalog.NewCachedRepository(inner, client, discardLogger())

	artworkURL, err := cached.GetArtworkURL(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, artworkURL)
	assert.Equal(t, "https://img.ludex.gg/1.png", *artworkURL)

	key := fmt.Sprintf("%s%d", constants.RedisPrefixArtwork, 1)
	stored, err := server.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "https://img.ludex.gg/1.png", stored)
	assert.Equal(t, constants.ArtworkCacheTTL, server.TTL(key))
}

/*
TestCachedRepository_ArtworkHitSkipsDatabase verifies that once a URL is
cached, subsequent lookups are served from Redis without touching the inner
repository.
*/
func TestCachedRepository_ArtworkHitSkipsDatabase(t *testing.T) {
	_, client := liveRedis(t)
	inner := seededRepository()
	cached := catalog.NewCachedRepository(inner, client, discardLogger())

	first, err := cached.GetArtworkURL(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, first)

	// With the database gone, only the cache can answer.
	inner.failWith = apperr.Storage(fmt.Errorf("connection refused"))

	second, err := cached.GetArtworkURL(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

/*
TestCachedRepository_NilArtworkNotCached verifies that records without
artwork are never written to the cache: a null projection stays a database
answer so a later backfill shows up within one request.
*/
func TestCachedRepository_NilArtworkNotCached(t *testing.T) {
	server, client := liveRedis(t)
	inner := seededRepository()
	cached := catalog.NewCachedRepository(inner, client, discardLogger())

	artworkURL, err := cached.GetArtworkURL(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, artworkURL)

	key := fmt.Sprintf("%s%d", constants.RedisPrefixArtwork, 2)
	assert.False(t, server.Exists(key))
}
