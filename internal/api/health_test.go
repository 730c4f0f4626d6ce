// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/platform/ctxutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/* TestLiveness verifies that the liveness handler reports ok without
consulting any dependency. */
func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(api.HealthDependencies{}, quietLogger())

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

/* TestReadiness_PropagatesRequestContext verifies that dependency checkers
receive the incoming request's context, so a cancelled or deadline-bound
probe propagates to the pings. */
func TestReadiness_PropagatesRequestContext(t *testing.T) {
	var databaseCtx, cacheCtx context.Context

	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			databaseCtx = ctx
			return nil
		},
		CheckCache: func(ctx context.Context) error {
			cacheCtx = ctx
			return nil
		},
	}, quietLogger())

	request := httptest.NewRequest(http.MethodGet, "/ready", nil)
	request = request.WithContext(ctxutil.WithRequestID(request.Context(), "ready-check-1"))

	recorder := httptest.NewRecorder()
	readiness(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	require.NotNil(t, databaseCtx)
	require.NotNil(t, cacheCtx)
	assert.Equal(t, "ready-check-1", ctxutil.GetRequestID(databaseCtx))
	assert.Equal(t, "ready-check-1", ctxutil.GetRequestID(cacheCtx))
}

/* TestReadiness_DegradedWhenDependencyDown verifies that a failing checker
turns the response into a 503 with the failing check reported by name. */
func TestReadiness_DegradedWhenDependencyDown(t *testing.T) {
	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return nil },
		CheckCache: func(ctx context.Context) error {
			return errors.New("redis: ping failed: connection refused")
		},
	}, quietLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), `"name":"redis"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}
