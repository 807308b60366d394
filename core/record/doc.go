// Package record defines the catalog entities mirrored by the scraper.
//
// A Record is one remote catalog entry: an identifier, a display title and an
// arbitrary JSON metadata document. Only the metadata is persisted and compared.
//
// # Metadata semantics
//
//   - Canonical: converts any JSON-compatible Go value into the form produced by
//     decoding JSON with exact numbers, so provider output and stored files
//     compare value-for-value.
//   - Equal: deep structural equality (not a subset check).
//   - Merge: shallow, top-level merge. Remote keys replace local keys, keys only
//     present locally survive. Nested maps and slices are replaced wholesale.
//
// # Usage
//
//	remote, err := record.Canonical(rec.Metadata)
//	if !record.Equal(local, remote) {
//	    merged := record.Merge(local, remote)
//	}
package record
