// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ludexhq/ludex/internal/platform/constants"
	"github.com/ludexhq/ludex/internal/platform/ctxutil"
	"github.com/ludexhq/ludex/internal/platform/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestRequestID_GeneratesAndEchoes verifies that a correlation ID is minted when
absent and preserved when the client supplies one.
*/
func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	})
	handler := middleware.RequestID()(inner)

	// 1. No ID supplied: one is generated and exposed in the response header.
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	// 2. Client-supplied ID is kept.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "client-id")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "client-id", seen)
}

/*
TestSecurityHeaders verifies the baseline hardening header set.
*/
func TestSecurityHeaders(t *testing.T) {
	handler := middleware.SecurityHeaders()(okHandler())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/videogames", nil))

	assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", recorder.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", recorder.Header().Get("Referrer-Policy"))
}

// corsConfig is a minimal [middleware.AppConfig] for tests.
type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

/*
TestCORS_ProductionAllowList verifies that only configured origins receive
CORS headers outside development.
*/
func TestCORS_ProductionAllowList(t *testing.T) {
	handler := middleware.CORS(corsConfig{origins: []string{"https://ludex.gg"}})(okHandler())

	// Allowed origin.
	request := httptest.NewRequest(http.MethodGet, "/videogames", nil)
	request.Header.Set(constants.HeaderOrigin, "https://ludex.gg")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "https://ludex.gg", recorder.Header().Get("Access-Control-Allow-Origin"))

	// Unknown origin gets no CORS grant.
	request = httptest.NewRequest(http.MethodGet, "/videogames", nil)
	request.Header.Set(constants.HeaderOrigin, "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_Preflight verifies that OPTIONS requests short-circuit with 204.
*/
func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(corsConfig{development: true})(okHandler())

	request := httptest.NewRequest(http.MethodOptions, "/videogames", nil)
	request.Header.Set(constants.HeaderOrigin, "http://localhost:5173")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}
