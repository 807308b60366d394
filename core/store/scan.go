package store

import (
	"context"
	"strings"
)

// Scanner enumerates the content of a destination.
type Scanner interface {
	// Scan returns the ids of all entries and the names of every other
	// file or object found at the top level of the destination.
	Scan(ctx context.Context) (ids, strays []string, err error)
	// Remove deletes a stray file or object by name.
	Remove(ctx context.Context, name string) error
}

// ParseName returns the id stored under an entry name.
// ok is false for temporary files and names that are not entries.
func ParseName(name string) (id string, ok bool) {
	if IsTemp(name) || !strings.HasSuffix(name, Extension) {
		return "", false
	}
	id = strings.TrimSuffix(name, Extension)
	if ValidateID(id) != nil {
		return "", false
	}
	return id, true
}

// IsTemp reports whether name is a leftover of an interrupted write.
func IsTemp(name string) bool {
	return strings.HasPrefix(name, TempFilePrefix)
}
