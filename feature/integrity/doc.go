// Package integrity checks a scrape destination for damage.
//
// A destination is healthy when every "<id>.json" entry holds a JSON object and
// no temporary files from interrupted writes are left behind.
//
// # Checks
//
//   - Corrupt: entries that are empty, malformed or not a JSON object. They are
//     only reported; the next "scrape --all" run overwrites them.
//   - TempFiles: ".media-scraper-*.tmp" files left by a killed process.
//     Fix removes them.
//   - Unknown: anything else at the top level of the destination. Reported for
//     information and never touched.
//
// # Usage
//
//	svc := integrity.NewService(dir, logger)
//	report, err := svc.Check(ctx)
//	if !report.Healthy() {
//	    removed, err := svc.Fix(ctx, report)
//	}
package integrity
