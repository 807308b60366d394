// Package reconcile mirrors a remote catalog into a record store.
//
// The engine pulls records one at a time from a provider and decides, for each
// one, whether the local entry must be created, merge-updated or left alone.
// Exactly one record is in flight at any time and nothing is retried.
//
// # Decision policy
//
//	existing  fetchAll  corrupt  equal   action
//	no        any       -        -       create  (Scrapped)
//	yes       false     -        -       skip    (Skipped, content never read)
//	yes       true      yes      -       update  (local content treated as {})
//	yes       true      no       yes     noop    (no write, no outcome)
//	yes       true      no       no      update  (Updated, shallow merge)
//
// Equality is deep and structural. Merge is shallow: remote top-level keys
// overwrite local ones and keys only present locally are kept.
//
// # Failures
//
// Corrupt local entries are recovered and reported at debug level. Any other
// failure (store I/O, provider errors) stops the run with a *RunError naming the
// entry being processed. Cancellation of the context is checked between records
// and surfaces as a RunError of KindCancelled that matches ErrCancelled.
// Entries written before the failure are kept as they are.
//
// # Usage
//
//	engine := reconcile.NewEngine(store.NewDir(dest), reconcile.NewZapReporter(log))
//	summary, err := engine.Run(ctx, anilist.New(cfg.Provider), reconcile.Options{
//	    MediaType: provider.MediaAnime,
//	    StartPage: 1,
//	    FetchAll:  true,
//	})
package reconcile
