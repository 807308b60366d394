package reconcile

import (
	"context"
	"errors"
	"fmt"
)

// ErrCancelled matches run errors caused by cancellation.
var ErrCancelled = errors.New("run cancelled")

// Kind separates user cancellation from other failures.
type Kind int

const (
	KindFailed Kind = iota
	KindCancelled
)

// Stage names the step that failed.
type Stage string

const (
	StageFetch  Stage = "fetch"
	StageRead   Stage = "read"
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
)

// RunError aborts a run. ID and File identify the record being processed,
// or the last processed one when the provider failed between records.
type RunError struct {
	Kind  Kind
	Stage Stage
	ID    string
	File  string
	Err   error
}

func (e *RunError) Error() string {
	switch {
	case e.Kind == KindCancelled && e.File == "":
		return fmt.Sprintf("run cancelled before the first record: %v", e.Err)
	case e.Kind == KindCancelled:
		return fmt.Sprintf("run cancelled while processing file %s: %v", e.File, e.Err)
	case e.Stage == StageFetch && e.File == "":
		return fmt.Sprintf("failed fetching records before the first record: %v", e.Err)
	case e.Stage == StageFetch:
		return fmt.Sprintf("failed fetching records after file %s: %v", e.File, e.Err)
	default:
		return fmt.Sprintf("error encountered when creating file %s (%s): %v", e.File, e.Stage, e.Err)
	}
}

func (e *RunError) Unwrap() []error {
	if e.Kind == KindCancelled {
		return []error{ErrCancelled, e.Err}
	}
	return []error{e.Err}
}

// Cancelled reports whether the run was interrupted rather than failing.
func (e *RunError) Cancelled() bool {
	return e.Kind == KindCancelled
}

func kindOf(err error) Kind {
	if errors.Is(err, context.Canceled) {
		return KindCancelled
	}
	return KindFailed
}
