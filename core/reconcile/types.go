package reconcile

import "media-scraper/core/provider"

// Status is the reported outcome of a processed record.
type Status string

const (
	// StatusScrapped marks a newly created entry.
	StatusScrapped Status = "Scrapped"
	// StatusUpdated marks an existing entry that received merged metadata.
	StatusUpdated Status = "Updated"
	// StatusSkipped marks an existing entry left untouched because fetchAll is off.
	StatusSkipped Status = "Skipped"
)

// Action is the decision taken for a single record.
type Action string

const (
	// ActionCreate writes the remote metadata verbatim.
	ActionCreate Action = "create"
	// ActionUpdate writes local content merged with the remote metadata.
	ActionUpdate Action = "update"
	// ActionSkip leaves an existing entry alone without reading it.
	ActionSkip Action = "skip"
	// ActionNoop leaves an entry whose content already equals the remote metadata.
	ActionNoop Action = "noop"
)

// Options controls a single run.
type Options struct {
	// MediaType selects the catalog section.
	MediaType provider.MediaType

	// StartPage is the first provider page to request.
	StartPage int

	// FetchAll revisits existing entries and merge-updates them.
	// When false, any record with an existing entry is skipped.
	FetchAll bool

	// DryRun decides and reports every record but writes nothing.
	DryRun bool
}

// Outcome describes a processed record for reporting.
type Outcome struct {
	Status     Status
	Datasource string
	ID         string
	Title      string
	// File is the entry name, e.g. "21.json".
	File string
	// DryRun is set when the write was suppressed.
	DryRun bool
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// Processed counts records pulled from the provider.
	Processed int `json:"processed"`

	// Scrapped counts created entries.
	Scrapped int `json:"scrapped"`

	// Updated counts merge-updated entries.
	Updated int `json:"updated"`

	// Skipped counts existing entries ignored because fetchAll was off.
	Skipped int `json:"skipped"`

	// Unchanged counts entries already equal to the remote metadata.
	Unchanged int `json:"unchanged"`

	// Corrupt counts unreadable local entries that were replaced.
	Corrupt int `json:"corrupt"`
}

// Writes returns the number of entries created or updated.
func (s Summary) Writes() int {
	return s.Scrapped + s.Updated
}
