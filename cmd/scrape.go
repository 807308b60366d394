package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"media-scraper/core/config"
	"media-scraper/core/logger"
	"media-scraper/core/provider"
	"media-scraper/core/reconcile"
	"media-scraper/core/storage"
	"media-scraper/core/store"
	"media-scraper/feature/anilist"
	"media-scraper/feature/myanimelist"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the scrape command
	scrapeDestination string
	fetchAll          bool
	startPage         int
	dryRun            bool
)

// scrapeCmd mirrors one catalog into the destination.
var scrapeCmd = &cobra.Command{
	Use:   "scrape <datasource> <media_type>",
	Short: "Mirror a catalog into one JSON file per entry",
	Long: `Fetch a catalog page by page and store every entry as <id>.json.

New entries are always written. Entries that already exist are skipped,
unless --all is given: then they are compared with the remote copy and
updated (merged) when they differ. Corrupt files are replaced.

The destination is a directory, or s3://bucket/prefix for an S3 bucket
configured through the STORAGE_* settings.

Examples:
  # Add new anime from AniList
  media-scraper scrape anilist anime -d data/anilist/anime

  # Revisit every MyAnimeList manga entry, starting at page 40
  media-scraper scrape myanimelist manga -d data/mal/manga --all --start-page 40

  # Show what would change without writing
  media-scraper scrape anilist manga -d s3://catalogs/anilist/manga --all --dry-run`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{provider.DatasourceAniList, provider.DatasourceMyAnimeList},
	RunE:      runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeDestination, "destination", "d", "", "Where to save files (directory or s3://bucket/prefix)")
	scrapeCmd.Flags().BoolVarP(&fetchAll, "all", "a", false, "Look at all entries, updating existing ones")
	scrapeCmd.Flags().IntVar(&startPage, "start-page", 1, "First catalog page to request")
	scrapeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report decisions without writing")
	_ = scrapeCmd.MarkFlagRequired("destination")

	RootCmd.AddCommand(scrapeCmd)
}

// providers lists the supported datasources.
func providers() *provider.Registry {
	r := provider.NewRegistry()
	r.Register(provider.DatasourceAniList, anilist.New)
	r.Register(provider.DatasourceMyAnimeList, myanimelist.New)
	return r
}

// openStore picks the store for a destination.
func openStore(cfg *config.Config, dest string) (store.Store, error) {
	bucket, prefix, ok, err := store.ParseBucketDestination(dest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return store.NewDir(dest), nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return store.NewBucket(client, bucket, prefix, cfg.Storage.Region), nil
}

func runScrape(cmd *cobra.Command, args []string) error {
	datasource := strings.ToLower(strings.TrimSpace(args[0]))
	if !provider.IsValidDatasource(datasource) {
		return fmt.Errorf("unknown datasource %q (want %s or %s)", args[0], provider.DatasourceAniList, provider.DatasourceMyAnimeList)
	}
	mediaType, err := provider.ParseMediaType(args[1])
	if err != nil {
		return err
	}
	if startPage < 1 {
		return fmt.Errorf("--start-page must be at least 1, got %d", startPage)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l = logger.WithRun(l, uuid.NewString(), datasource, string(mediaType))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cfg, scrapeDestination)
	if err != nil {
		return err
	}
	if err := st.Initialize(ctx); err != nil {
		return err
	}

	p, err := providers().New(datasource, cfg.Provider)
	if err != nil {
		return err
	}

	l.Info("Starting scrape",
		zap.String("destination", st.Location()),
		zap.Bool("fetch_all", fetchAll),
		zap.Int("start_page", startPage),
		zap.Bool("dry_run", dryRun),
	)

	engine := reconcile.NewEngine(st, reconcile.NewZapReporter(l))
	summary, err := engine.Run(ctx, p, reconcile.Options{
		MediaType: mediaType,
		StartPage: startPage,
		FetchAll:  fetchAll,
		DryRun:    dryRun,
	})

	fields := []zap.Field{
		zap.Int("processed", summary.Processed),
		zap.Int("scrapped", summary.Scrapped),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("corrupt", summary.Corrupt),
	}
	if err != nil {
		l.Warn("Scrape stopped early", fields...)
		return err
	}

	l.Info("Scrape finished", fields...)
	return nil
}
