// Package anilist implements the AniList datasource.
//
// Media are read from the public GraphQL API with a single paged query,
// Page(page, perPage) { media(type, sort) }. The complete media object is
// stored as the record metadata; the id becomes the record identifier and the
// romaji title (falling back to english, then native) is used for reporting.
//
// # Paging
//
//   - fetch all: sort ID, from the start page until hasNextPage is false
//   - new entries: sort ID_DESC, at most provider.Config.NewPages pages
//
// Page size is capped at 50, the maximum the API allows. Requests go through
// provider.Transport, so they are rate limited and retried on 429 and 5xx.
package anilist
