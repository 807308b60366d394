package reconcile

import (
	"fmt"

	"go.uber.org/zap"
)

// Reporter receives run events. Implementations must not block for long:
// they are called inline between store operations.
type Reporter interface {
	// Outcome is called once per created, updated or skipped record.
	Outcome(o Outcome)
	// CorruptEntry is called when an existing entry could not be parsed.
	CorruptEntry(datasource, id, file string)
	// Aborted is called once before Run returns a *RunError.
	Aborted(err *RunError)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Outcome(Outcome)                     {}
func (NopReporter) CorruptEntry(string, string, string) {}
func (NopReporter) Aborted(*RunError)                   {}

// FormatOutcome renders the human readable outcome line,
// e.g. "Scrapped anilist 21     | <One Piece>...".
func FormatOutcome(o Outcome) string {
	return fmt.Sprintf("%s %s %-6s | <%s>...", o.Status, o.Datasource, o.ID, o.Title)
}

// ZapReporter logs run events with zap.
// Skipped records and corrupt entries are logged at debug level,
// created and updated records at info, aborts at error.
type ZapReporter struct {
	logger *zap.Logger
}

// NewZapReporter creates a reporter writing to l.
func NewZapReporter(l *zap.Logger) *ZapReporter {
	return &ZapReporter{logger: l}
}

func (r *ZapReporter) Outcome(o Outcome) {
	fields := []zap.Field{
		zap.String("status", string(o.Status)),
		zap.String("datasource", o.Datasource),
		zap.String("id", o.ID),
		zap.String("title", o.Title),
		zap.String("file", o.File),
	}
	if o.DryRun {
		fields = append(fields, zap.Bool("dry_run", true))
	}

	if o.Status == StatusSkipped {
		r.logger.Debug(FormatOutcome(o), fields...)
		return
	}
	r.logger.Info(FormatOutcome(o), fields...)
}

func (r *ZapReporter) CorruptEntry(datasource, id, file string) {
	r.logger.Debug(fmt.Sprintf("An empty file was discovered for %s id: <%s>.", datasource, id),
		zap.String("datasource", datasource),
		zap.String("id", id),
		zap.String("file", file),
	)
}

func (r *ZapReporter) Aborted(err *RunError) {
	fields := []zap.Field{
		zap.String("id", err.ID),
		zap.String("file", err.File),
		zap.String("stage", string(err.Stage)),
		zap.Error(err.Err),
	}

	if err.Cancelled() {
		r.logger.Error("Program interrupted by keyboard shortcut.", fields...)
		return
	}
	if err.Stage == StageFetch {
		r.logger.Error("Error encountered when fetching records.", fields...)
		return
	}
	r.logger.Error(fmt.Sprintf("Error encountered when creating file %s.", err.File), fields...)
}
