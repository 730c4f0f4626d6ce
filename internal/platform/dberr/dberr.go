// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ludexhq/ludex/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// Missing rows map to a not-found error for the given resource name. Every
// other failure becomes a storage error whose driver message is passed
// through to the client unchanged.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Everything else is reported as a storage failure
	return apperr.Storage(err)
}
