// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

/*
Package catalog defines the core domain for the Ludex video game catalogue.

It exposes read-only query access to the catalog table: point lookup by
identifier, filtered listing, and an artwork-URL projection. Records are
created and mutated entirely outside this service; no write path exists here.
*/
package catalog

// Game is one row of the catalogue.
//
// The id uniquely identifies exactly one record; every other field is
// unconstrained free text maintained by the external ingestion pipeline.
type Game struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Developer  string  `json:"developer"`
	Publisher  string  `json:"publisher"`
	Genre      string  `json:"genre"`
	Platform   string  `json:"platform"`
	ArtworkURL *string `json:"artwork_url"`
}

// Filter is the per-request set of optional substring constraints for the
// list operation. An empty field imposes no constraint.
type Filter struct {
	Title     string
	Developer string
	Publisher string
	Genre     string
	Platform  string
}

// IsEmpty reports whether no filter field is set.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}
