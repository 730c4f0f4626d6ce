// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. The
// catalog API predates the service rewrite and its clients rely on flat
// payload shapes (a bare record object, a bare array, {"message": ...},
// {"error": ...}), so unlike a fresh design there is no data envelope here.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ludexhq/ludex/internal/platform/apperr"
	"github.com/ludexhq/ludex/internal/platform/ctxkey"
)

// MessageEnvelope is the JSON payload for informational responses.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the JSON payload for error responses.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload serialized as-is.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Message writes a response carrying an informational message payload.
func Message(writer http.ResponseWriter, statusCode int, message string) {
	JSON(writer, statusCode, MessageEnvelope{Message: message})
}

// Error converts any Go error into the API's JSON error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the client.
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	// Not-found errors use the message payload shape, everything else the
	// error payload shape. Clients distinguish the two by key.
	if appError.HTTPStatus == http.StatusNotFound {
		Message(writer, appError.HTTPStatus, appError.Message)
		return
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{Error: appError.Message})
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
