// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and an optional rotating log file.
//
// # Run Awareness
//
// Every scrape run gets a run ID. The WithRun helper attaches it together with
// the datasource and media type, so all lines of a run, including the per-record
// outcome lines, can be correlated in the log file.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (colored, human readable) or json
//   - File: path of a JSON log file rotated by lumberjack
//     (max_size_mb, max_backups, max_age_days)
//
// The console output keeps the configured format while the file always
// receives JSON, one entry per line.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console", File: "scraper.log"})
//	log.Info("Run started")
//
//	l := logger.WithRun(log, runID, "anilist", "anime")
//	l.Error("Run failed", zap.Error(err))
package logger
