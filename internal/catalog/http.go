// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ludexhq/ludex/internal/platform/apperr"
	requestutil "github.com/ludexhq/ludex/internal/platform/request"
	"github.com/ludexhq/ludex/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalogue queries.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalogue [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalogue's endpoints.
//
// All endpoints are public and read-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listGames)
	router.Get("/{id}", handler.getGame)
	router.Get("/{id}/artwork", handler.getArtwork)

	return router
}

// artworkResponse is the payload shape of the artwork projection endpoint.
type artworkResponse struct {
	ArtworkURL *string `json:"artworkUrl"`
}

// # Catalogue Endpoints

/*
GET /videogames.

Description: Retrieves the list of games matching the supplied filters.
Each present filter matches as a case-insensitive substring of the
corresponding field; supplying no filters returns the full catalogue.

Request:
  - title: string (substring)
  - developer: string (substring)
  - publisher: string (substring)
  - genre: string (substring)
  - platform: string (substring)

Response:
  - 200: []Game
  - 500: {error}: Storage failure
*/
func (handler *Handler) listGames(writer http.ResponseWriter, request *http.Request) {
	filter := filterFromRequest(request)

	games, err := handler.service.ListGames(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, games)
}

/*
GET /videogames/{id}.

Description: Retrieves a single game by its identifier.

Response:
  - 200: Game: The full record
  - 200: {message}: "Game not found" when the identifier matches nothing
  - 400: {error}: Non-integer identifier
  - 500: {error}: Storage failure

The 200-with-message shape for missing records is a long-standing contract
with the bundled frontend; the artwork endpoint below reports the same
condition as a real 404.
*/
func (handler *Handler) getGame(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	game, err := handler.service.GetGame(request.Context(), id)
	if err != nil {
		if appError := apperr.As(err); appError != nil && apperr.IsNotFound(err) {
			respond.Message(writer, http.StatusOK, appError.Message)
			return
		}
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, game)
}

/*
GET /videogames/{id}/artwork.

Description: Projects only the artwork URL for a single game.

Response:
  - 200: {artworkUrl}: The URL, or null when the record carries no artwork
  - 404: {message}: "Game not found" when the identifier matches nothing
  - 400: {error}: Non-integer identifier
  - 500: {error}: Storage failure
*/
func (handler *Handler) getArtwork(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworkURL, err := handler.service.GetArtworkURL(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artworkResponse{ArtworkURL: artworkURL})
}

// filterFromRequest extracts the optional substring filters from the query string.
func filterFromRequest(request *http.Request) Filter {
	return Filter{
		Title:     requestutil.Query(request, "title"),
		Developer: requestutil.Query(request, "developer"),
		Publisher: requestutil.Query(request, "publisher"),
		Genre:     requestutil.Query(request, "genre"),
		Platform:  requestutil.Query(request, "platform"),
	}
}
