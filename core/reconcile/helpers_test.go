package reconcile_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"media-scraper/core/provider"
	"media-scraper/core/reconcile"
	"media-scraper/core/record"
	"media-scraper/core/store"

	"github.com/stretchr/testify/require"
)

// fakeProvider yields a fixed list of records, optionally failing before
// the record at failAt (failAt == len(records) fails after the last one).
type fakeProvider struct {
	records []record.Record
	err     error
	failAt  int
	// beforeYield runs before record i is handed to the engine.
	beforeYield func(i int)
}

func (p *fakeProvider) Name() string { return "anilist" }

func (p *fakeProvider) Fetch(ctx context.Context, startPage int, mediaType provider.MediaType, fetchAll bool) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for i, rec := range p.records {
			if p.err != nil && i == p.failAt {
				yield(record.Record{}, p.err)
				return
			}
			if p.beforeYield != nil {
				p.beforeYield(i)
			}
			if !yield(rec, nil) {
				return
			}
		}
		if p.err != nil && p.failAt >= len(p.records) {
			yield(record.Record{}, p.err)
		}
	}
}

// countingStore wraps a store and counts content reads and writes.
type countingStore struct {
	store.Store
	reads  map[string]int
	writes map[string]int
	// failWrite makes Write fail for the given id.
	failWrite map[string]error
}

func newCountingStore(inner store.Store) *countingStore {
	return &countingStore{
		Store:     inner,
		reads:     make(map[string]int),
		writes:    make(map[string]int),
		failWrite: make(map[string]error),
	}
}

func (s *countingStore) Read(ctx context.Context, id string) (record.Metadata, bool, error) {
	s.reads[id]++
	return s.Store.Read(ctx, id)
}

func (s *countingStore) Write(ctx context.Context, id string, m record.Metadata) error {
	if err, ok := s.failWrite[id]; ok {
		return err
	}
	s.writes[id]++
	return s.Store.Write(ctx, id, m)
}

func (s *countingStore) totalWrites() int {
	n := 0
	for _, c := range s.writes {
		n += c
	}
	return n
}

// recordingReporter keeps every event.
type recordingReporter struct {
	outcomes []reconcile.Outcome
	corrupt  []string
	aborted  *reconcile.RunError
}

func (r *recordingReporter) Outcome(o reconcile.Outcome) { r.outcomes = append(r.outcomes, o) }

func (r *recordingReporter) CorruptEntry(datasource, id, file string) {
	r.corrupt = append(r.corrupt, id)
}

func (r *recordingReporter) Aborted(err *reconcile.RunError) { r.aborted = err }

func (r *recordingReporter) statuses() []reconcile.Status {
	out := make([]reconcile.Status, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		out = append(out, o.Status)
	}
	return out
}

type fixture struct {
	root     string
	store    *countingStore
	reporter *recordingReporter
	engine   *reconcile.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	dir := store.NewDir(root)
	require.NoError(t, dir.Initialize(context.Background()))

	st := newCountingStore(dir)
	rep := &recordingReporter{}
	return &fixture{root: root, store: st, reporter: rep, engine: reconcile.NewEngine(st, rep)}
}

func (f *fixture) writeRaw(t *testing.T, id, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.root, id+".json"), []byte(content), 0o644))
}

func (f *fixture) readRaw(t *testing.T, id string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, id+".json"))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) readEntry(t *testing.T, id string) record.Metadata {
	t.Helper()
	m, err := record.Decode([]byte(f.readRaw(t, id)))
	require.NoError(t, err)
	return m
}

func (f *fixture) entryExists(id string) bool {
	_, err := os.Stat(filepath.Join(f.root, id+".json"))
	return err == nil
}
