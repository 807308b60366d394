// Package myanimelist implements the MyAnimeList datasource on top of the
// Jikan v4 REST API (https://api.jikan.moe/v4).
//
// Entries are listed with GET /{anime|manga}?page=&limit=&order_by=mal_id&sort=.
// Each element of the data array is stored as record metadata, keyed by mal_id
// and reported under its title.
//
// Jikan allows at most 25 entries per page and about 60 requests per minute;
// provider.Config controls pacing and retries.
package myanimelist
