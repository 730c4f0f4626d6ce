// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog

import (
	"context"
	"log/slog"
)

// Service exposes the catalogue's read operations to the HTTP layer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a catalogue [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetGame returns the record with the given identifier.
func (service *Service) GetGame(context context.Context, id int64) (*Game, error) {
	return service.repo.GetByID(context, id)
}

// ListGames returns every record matching the filter, the full catalogue
// when the filter is empty.
func (service *Service) ListGames(context context.Context, filter Filter) ([]*Game, error) {
	return service.repo.List(context, filter)
}

// GetArtworkURL returns the artwork URL projection for one record.
func (service *Service) GetArtworkURL(context context.Context, id int64) (*string, error) {
	return service.repo.GetArtworkURL(context, id)
}
