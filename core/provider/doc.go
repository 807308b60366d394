// Package provider defines how remote catalogs feed records to the scraper.
//
// A Provider exposes a single capability: Fetch returns a lazy sequence of
// records for a media type, starting at a page. Pages are requested only as
// the consumer advances, and a failure ends the sequence with one error value.
//
// # Fetch modes
//
// With fetchAll set, adapters walk the whole catalog in ascending id order.
// Without it they may restrict themselves to the newest entries (see
// Config.NewPages). Consumers must not rely on either behavior: duplicates and
// arbitrary ordering are allowed.
//
// # Shared plumbing
//
//   - Paginate: turns a page fetcher into a record sequence.
//   - Transport: rate limited, retrying HTTP calls built on the Fiber client.
//   - Registry: maps datasource names to adapter constructors.
package provider
