package reconcile

import (
	"context"

	"media-scraper/core/provider"
	"media-scraper/core/record"
	"media-scraper/core/store"
)

// Engine reconciles provider records into a store.
type Engine struct {
	store    store.Store
	reporter Reporter
}

// NewEngine creates an engine. A nil reporter discards events.
func NewEngine(st store.Store, reporter Reporter) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Engine{store: st, reporter: reporter}
}

// Run drains the provider sequence, applying the decision policy to every
// record in order. It stops at the first failure or cancellation and returns
// the counts gathered so far along with a *RunError.
func (e *Engine) Run(ctx context.Context, p provider.Provider, opts Options) (Summary, error) {
	var summary Summary
	datasource := p.Name()

	var lastID, lastFile string
	for rec, err := range p.Fetch(ctx, opts.StartPage, opts.MediaType, opts.FetchAll) {
		if err != nil {
			return summary, e.abort(&RunError{Kind: kindOf(err), Stage: StageFetch, ID: lastID, File: lastFile, Err: err})
		}

		lastID, lastFile = rec.ID, store.Name(rec.ID)
		if err := ctx.Err(); err != nil {
			return summary, e.abort(&RunError{Kind: kindOf(err), Stage: StageFetch, ID: lastID, File: lastFile, Err: err})
		}

		summary.Processed++
		if err := e.reconcile(ctx, datasource, rec, opts, &summary); err != nil {
			return summary, e.abort(err)
		}
	}

	return summary, nil
}

// reconcile handles a single record.
func (e *Engine) reconcile(ctx context.Context, datasource string, rec record.Record, opts Options, summary *Summary) *RunError {
	file := store.Name(rec.ID)
	fail := func(stage Stage, err error) *RunError {
		return &RunError{Kind: kindOf(err), Stage: stage, ID: rec.ID, File: file, Err: err}
	}

	exists, err := e.store.Exists(ctx, rec.ID)
	if err != nil {
		return fail(StageRead, err)
	}

	if exists && !opts.FetchAll {
		summary.Skipped++
		e.reporter.Outcome(Outcome{Status: StatusSkipped, Datasource: datasource, ID: rec.ID, Title: rec.Title, File: file})
		return nil
	}

	remote, err := record.Canonical(rec.Metadata)
	if err != nil {
		return fail(StageEncode, err)
	}

	payload := remote
	var corrupt, equal bool
	if exists {
		local, wasCorrupt, err := e.store.Read(ctx, rec.ID)
		if err != nil {
			return fail(StageRead, err)
		}
		if wasCorrupt {
			summary.Corrupt++
			e.reporter.CorruptEntry(datasource, rec.ID, file)
		}

		corrupt = wasCorrupt
		equal = !corrupt && record.Equal(local, remote)
		payload = record.Merge(local, remote)
	}

	action := Decide(exists, opts.FetchAll, corrupt, equal)
	if action == ActionNoop {
		summary.Unchanged++
		return nil
	}

	if !opts.DryRun {
		if err := e.store.Write(ctx, rec.ID, payload); err != nil {
			return fail(StageWrite, err)
		}
	}

	status := StatusScrapped
	if action == ActionUpdate {
		status = StatusUpdated
		summary.Updated++
	} else {
		summary.Scrapped++
	}

	e.reporter.Outcome(Outcome{
		Status:     status,
		Datasource: datasource,
		ID:         rec.ID,
		Title:      rec.Title,
		File:       file,
		DryRun:     opts.DryRun,
	})
	return nil
}

func (e *Engine) abort(err *RunError) error {
	e.reporter.Aborted(err)
	return err
}
