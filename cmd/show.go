package cmd

import (
	"errors"
	"fmt"

	"media-scraper/core/config"
	"media-scraper/core/store"

	"github.com/spf13/cobra"
)

// ErrEntryNotFound is returned by show for an id without entry.
var ErrEntryNotFound = errors.New("entry not found")

// Flags for the show command
var showDestination string

// showCmd prints a stored entry.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the stored JSON document of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showDestination, "destination", "d", "", "Where files are saved (directory or s3://bucket/prefix)")
	_ = showCmd.MarkFlagRequired("destination")

	RootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStore(cfg, showDestination)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	exists, err := st.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s in %s: %w", store.Name(id), st.Location(), ErrEntryNotFound)
	}

	meta, corrupt, err := st.Read(ctx, id)
	if err != nil {
		return err
	}
	if corrupt {
		return fmt.Errorf("%s in %s is corrupt; run scrape with --all to replace it", store.Name(id), st.Location())
	}

	data, err := store.Encode(meta)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
