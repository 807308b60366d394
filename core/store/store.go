package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"media-scraper/core/record"
)

// Extension is appended to the record identifier to name its entry.
const Extension = ".json"

// ErrInvalidID is returned for identifiers that cannot be mapped to a single entry name.
var ErrInvalidID = errors.New("invalid record id")

// Store reads and writes the persisted metadata of records.
type Store interface {
	// Initialize prepares the destination, creating it when absent.
	Initialize(ctx context.Context) error
	// Exists reports whether an entry is present for id.
	Exists(ctx context.Context, id string) (bool, error)
	// Read loads the entry for id. Unparseable content yields an empty
	// mapping and corrupt=true instead of an error.
	Read(ctx context.Context, id string) (meta record.Metadata, corrupt bool, err error)
	// Write replaces the entry for id with m in a single step.
	Write(ctx context.Context, id string, m record.Metadata) error
	// Location returns a human readable description of the destination.
	Location() string
}

// Name returns the entry name for id.
func Name(id string) string {
	return id + Extension
}

// ValidateID checks that id maps to exactly one flat entry name.
func ValidateID(id string) error {
	switch {
	case id == "", id == ".", id == "..":
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	case strings.ContainsAny(id, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidID, id)
	}
	return nil
}
