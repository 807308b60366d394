package reconcile_test

import (
	"errors"
	"testing"

	"media-scraper/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatOutcome(t *testing.T) {
	line := reconcile.FormatOutcome(reconcile.Outcome{
		Status:     reconcile.StatusScrapped,
		Datasource: "anilist",
		ID:         "21",
		Title:      "One Piece",
	})
	assert.Equal(t, "Scrapped anilist 21     | <One Piece>...", line)
}

func TestZapReporter_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := reconcile.NewZapReporter(zap.New(core))

	r.Outcome(reconcile.Outcome{Status: reconcile.StatusSkipped, Datasource: "anilist", ID: "1"})
	r.Outcome(reconcile.Outcome{Status: reconcile.StatusScrapped, Datasource: "anilist", ID: "2"})
	r.Outcome(reconcile.Outcome{Status: reconcile.StatusUpdated, Datasource: "anilist", ID: "3", DryRun: true})
	r.CorruptEntry("anilist", "4", "4.json")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, true, entries[2].ContextMap()["dry_run"])
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
	assert.Equal(t, "An empty file was discovered for anilist id: <4>.", entries[3].Message)
	assert.Equal(t, "Scrapped", entries[1].ContextMap()["status"])
}

func TestZapReporter_Aborted(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := reconcile.NewZapReporter(zap.New(core))

	r.Aborted(&reconcile.RunError{Kind: reconcile.KindCancelled, ID: "5", File: "5.json", Err: errors.New("context canceled")})
	r.Aborted(&reconcile.RunError{Kind: reconcile.KindFailed, Stage: reconcile.StageWrite, ID: "6", File: "6.json", Err: errors.New("disk full")})
	r.Aborted(&reconcile.RunError{Kind: reconcile.KindFailed, Stage: reconcile.StageFetch, Err: errors.New("timeout")})

	entries := logs.All()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, zapcore.ErrorLevel, e.Level)
	}
	assert.Equal(t, "Program interrupted by keyboard shortcut.", entries[0].Message)
	assert.Equal(t, "Error encountered when creating file 6.json.", entries[1].Message)
	assert.Equal(t, "6.json", entries[1].ContextMap()["file"])
	assert.Equal(t, "Error encountered when fetching records.", entries[2].Message)
}
