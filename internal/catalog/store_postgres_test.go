// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestBuildListQuery_NoFilters verifies that an empty filter produces an
unconditional full-catalogue query.
*/
func TestBuildListQuery_NoFilters(t *testing.T) {
	query, args := buildListQuery(Filter{})

	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY id ASC"))
	assert.Empty(t, args)
}

/*
TestBuildListQuery_SingleFilter verifies the shape of a one-condition predicate.
*/
func TestBuildListQuery_SingleFilter(t *testing.T) {
	query, args := buildListQuery(Filter{Title: "mario"})

	assert.Contains(t, query, `WHERE title ILIKE '%' || $1 || '%' ESCAPE '\'`)
	assert.NotContains(t, query, "AND")
	require.Len(t, args, 1)
	assert.Equal(t, "mario", args[0])
}

/*
TestBuildListQuery_AllFilters verifies that all five conditions appear in the
fixed field order and that placeholder numbering aligns positionally with the
argument slice.
*/
func TestBuildListQuery_AllFilters(t *testing.T) {
	filter := Filter{
		Title:     "zelda",
		Developer: "nintendo",
		Publisher: "nintendo of america",
		Genre:     "adventure",
		Platform:  "switch",
	}

	query, args := buildListQuery(filter)

	require.Len(t, args, 5)
	assert.Equal(t, []any{"zelda", "nintendo", "nintendo of america", "adventure", "switch"}, args)

	// Conditions must appear in the fixed field order with sequential placeholders.
	positions := []int{
		strings.Index(query, `title ILIKE '%' || $1`),
		strings.Index(query, `developer ILIKE '%' || $2`),
		strings.Index(query, `publisher ILIKE '%' || $3`),
		strings.Index(query, `genre ILIKE '%' || $4`),
		strings.Index(query, `platform ILIKE '%' || $5`),
	}
	for i, position := range positions {
		require.GreaterOrEqual(t, position, 0, "condition %d missing", i+1)
		if i > 0 {
			assert.Greater(t, position, positions[i-1], "condition %d out of order", i+1)
		}
	}

	assert.Equal(t, 4, strings.Count(query, " AND "))
}

/*
TestBuildListQuery_SkipsAbsentFields verifies that absent filters contribute
no condition and placeholder numbering stays dense.
*/
func TestBuildListQuery_SkipsAbsentFields(t *testing.T) {
	query, args := buildListQuery(Filter{Developer: "acme", Platform: "pc"})

	assert.Contains(t, query, `developer ILIKE '%' || $1`)
	assert.Contains(t, query, `platform ILIKE '%' || $2`)
	assert.NotContains(t, query, "title ILIKE")
	assert.NotContains(t, query, "publisher ILIKE")
	assert.NotContains(t, query, "genre ILIKE")
	assert.Equal(t, []any{"acme", "pc"}, args)
}

/*
TestBuildListQuery_MetacharactersStayBound verifies that SQL metacharacters in
filter values never reach the query text. They travel exclusively as bound
arguments, with LIKE wildcards escaped for literal matching.
*/
func TestBuildListQuery_MetacharactersStayBound(t *testing.T) {
	hostile := `'; DROP TABLE catalog.videogame; --`

	query, args := buildListQuery(Filter{Title: hostile})

	assert.NotContains(t, query, "DROP TABLE")
	require.Len(t, args, 1)
	assert.Equal(t, hostile, args[0])

	// LIKE wildcards are escaped so they match literally.
	_, args = buildListQuery(Filter{Title: "100%_done"})
	assert.Equal(t, []any{`100\%\_done`}, args)
}

/*
TestEscapeLike verifies the LIKE metacharacter escaping table.
*/
func TestEscapeLike(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "mario", "mario"},
		{"percent", "100%", `100\%`},
		{"underscore", "a_b", `a\_b`},
		{"backslash", `a\b`, `a\\b`},
		{"mixed", `%_\`, `\%\_\\`},
		{"empty", "", ""},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, escapeLike(testCase.input))
		})
	}
}
