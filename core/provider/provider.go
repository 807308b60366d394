package provider

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"media-scraper/core/record"
)

// MediaType selects the catalog section to traverse.
type MediaType string

const (
	MediaAnime MediaType = "anime"
	MediaManga MediaType = "manga"
)

// ParseMediaType accepts "anime" or "manga" in any case.
func ParseMediaType(s string) (MediaType, error) {
	switch mt := MediaType(strings.ToLower(strings.TrimSpace(s))); mt {
	case MediaAnime, MediaManga:
		return mt, nil
	}
	return "", fmt.Errorf("unsupported media type %q (expected anime or manga)", s)
}

// Provider yields the records of a remote catalog.
type Provider interface {
	// Name returns the datasource name used in reports (e.g., "anilist").
	Name() string
	// Fetch returns records lazily, page by page, starting at startPage.
	// When fetchAll is false the provider may return only recent entries.
	// A failure is yielded once as a non-nil error, after which the sequence ends.
	Fetch(ctx context.Context, startPage int, mediaType MediaType, fetchAll bool) iter.Seq2[record.Record, error]
}
