package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"media-scraper/core/record"
)

// Dir stores entries as files in a local directory.
type Dir struct {
	root string
}

// NewDir returns a store rooted at path. Call Initialize before use.
func NewDir(path string) *Dir {
	return &Dir{root: filepath.Clean(path)}
}

// Path returns the file backing id.
func (d *Dir) Path(id string) string {
	return filepath.Join(d.root, Name(id))
}

func (d *Dir) Location() string {
	return d.root
}

func (d *Dir) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("failed to create destination %s: %w", d.root, err)
	}
	return nil
}

func (d *Dir) Exists(ctx context.Context, id string) (bool, error) {
	if err := ValidateID(id); err != nil {
		return false, err
	}

	info, err := os.Stat(d.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", Name(id), err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("entry %s is a directory", Name(id))
	}
	return true, nil
}

func (d *Dir) Read(ctx context.Context, id string) (record.Metadata, bool, error) {
	if err := ValidateID(id); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(d.Path(id))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", Name(id), err)
	}

	meta, corrupt := decodeEntry(data)
	return meta, corrupt, nil
}

func (d *Dir) Write(ctx context.Context, id string, m record.Metadata) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	data, err := Encode(m)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(d.Path(id), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", Name(id), err)
	}
	return nil
}

func (d *Dir) Scan(ctx context.Context) ([]string, []string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", d.root, err)
	}

	var ids, strays []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if id, ok := ParseName(e.Name()); ok {
			ids = append(ids, id)
			continue
		}
		strays = append(strays, e.Name())
	}
	return ids, strays, nil
}

func (d *Dir) Remove(ctx context.Context, name string) error {
	if err := ValidateID(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(d.root, name)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
