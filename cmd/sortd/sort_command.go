package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/journal"
	"sortd/internal/sorter"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort files already present, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			var recorder journal.Recorder = journal.Nop{}
			if cfg.Journal.Enabled {
				store, err := journal.Open(cfg)
				if err != nil {
					return fmt.Errorf("open journal: %w", err)
				}
				defer store.Close()
				recorder = store
			}

			summary, err := sorter.New(cfg, recorder, logger).ScanExisting(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved %d, unmatched %d, skipped %d, failed %d\n",
				summary.Moved, summary.Unmatched, summary.Skipped, summary.Failed)
			if summary.Failed > 0 {
				return fmt.Errorf("%d file(s) failed to move", summary.Failed)
			}
			return nil
		},
	}
}
