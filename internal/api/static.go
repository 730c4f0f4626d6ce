// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

// Static asset delivery: game artwork images and the prebuilt frontend bundle.

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ArtworkHandler serves the game artwork image directory.
//
// Directory listings are refused; only concrete files are delivered.
func ArtworkHandler(artworkDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(artworkDir))

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Reject bare directory requests outright.
		if request.URL.Path == "" || strings.HasSuffix(request.URL.Path, "/") {
			http.NotFound(writer, request)
			return
		}

		fileServer.ServeHTTP(writer, request)
	})
}

// SPAHandler serves the prebuilt frontend bundle with an index.html fallback.
//
// # Routing
//
// Files that exist in the bundle (JS, CSS, images) are served directly.
// Every other GET falls back to index.html so the frontend router can take
// over client-side. Non-GET methods land here only when no API route
// matched, and are refused.
func SPAHandler(frontendDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(frontendDir))

	return func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodGet && request.Method != http.MethodHead {
			http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Resolve the requested path inside the bundle directory.
		// filepath.Join cleans the path, neutralizing any ../ traversal.
		requested := filepath.Join(frontendDir, filepath.Clean("/"+request.URL.Path))

		info, err := os.Stat(requested)
		if err != nil || info.IsDir() {
			// Unknown path: hand the frontend router its entry point.
			http.ServeFile(writer, request, filepath.Join(frontendDir, "index.html"))
			return
		}

		fileServer.ServeHTTP(writer, request)
	}
}
