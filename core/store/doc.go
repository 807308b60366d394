// Package store persists one JSON document per catalog record.
//
// Every record identifier maps to exactly one entry named "<id>.json". Two
// backends implement the Store contract:
//
//   - Dir: a local directory. Writes go to a temporary file in the same
//     directory which is then renamed over the target, so readers never see a
//     half-written entry.
//   - Bucket: an S3-compatible bucket under an optional key prefix, selected with
//     an "s3://bucket/prefix" destination. Uploads replace objects wholesale.
//
// # Corrupt entries
//
// Read never fails because of the entry content. An empty or malformed file,
// or a JSON value that is not an object, comes back as an empty mapping with
// corrupt set to true. Only I/O failures are returned as errors.
//
// # Scanning
//
// Both backends implement Scanner, which lists entries and any other top-level
// file or object (for instance temporary files left by a killed process).
//
// # Encoding
//
// Entries are UTF-8 JSON objects indented with four spaces. HTML characters and
// non-ASCII text are written literally and numbers keep their exact textual form.
package store
