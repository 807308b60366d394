package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"media-scraper/core/config"
	"media-scraper/core/logger"
	"media-scraper/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the integrity command
	integrityDestination string
	fixFlag              bool
	jsonFlag             bool
)

// integrityCmd checks a destination for corrupt entries and leftover temporary files.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check a destination for corrupt entries and leftover temporary files",
	Long: `Reads every entry of the destination and reports corrupt entries,
temporary files left by interrupted runs, and unknown files.

With --fix the temporary files are removed. Corrupt entries are replaced
by the next "scrape --all" run.`,
	Args: cobra.NoArgs,
	RunE: runIntegrity,
}

func init() {
	integrityCmd.Flags().StringVarP(&integrityDestination, "destination", "d", "", "Destination to check (directory or s3://bucket/prefix)")
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Remove leftover temporary files")
	integrityCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the report as JSON")
	_ = integrityCmd.MarkFlagRequired("destination")

	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	st, err := openStore(cfg, integrityDestination)
	if err != nil {
		return err
	}
	dest, ok := st.(integrity.Destination)
	if !ok {
		return fmt.Errorf("destination %s cannot be scanned", st.Location())
	}

	svc := integrity.NewService(dest, logg)
	report, err := svc.Check(ctx)
	if err != nil {
		return fmt.Errorf("integrity check failed: %w", err)
	}

	removed := 0
	if fixFlag && len(report.TempFiles) > 0 {
		if removed, err = svc.Fix(ctx, report); err != nil {
			return fmt.Errorf("failed to remove temporary files: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if jsonFlag {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out, "=== Destination Integrity ===")
		fmt.Fprintf(out, "Location: %s\n", report.Location)
		fmt.Fprintf(out, "Entries: %d\n", report.Entries)
		fmt.Fprintf(out, "Corrupt: %d\n", len(report.Corrupt))
		fmt.Fprintf(out, "Temporary Files: %d (removed %d)\n", len(report.TempFiles), removed)
		fmt.Fprintf(out, "Unknown Files: %d\n", len(report.Unknown))
	}

	logg.Info("Integrity check completed",
		zap.String("destination", report.Location),
		zap.Int("entries", report.Entries),
		zap.Int("corrupt", len(report.Corrupt)),
		zap.Int("temp_files", len(report.TempFiles)),
		zap.Int("removed", removed),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}
