package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/daemon"
	"sortd/internal/preflight"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var skipPreflight bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the downloads directory and sort arrivals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !skipPreflight {
				results := preflight.RunAll(cfg)
				for _, result := range results {
					marker := "ok"
					if !result.Passed {
						marker = "FAIL"
					}
					fmt.Fprintf(out, "%-4s %s: %s\n", marker, result.Name, result.Detail)
				}
				if !preflight.AllPassed(results) {
					return fmt.Errorf("preflight checks failed")
				}
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			d, err := daemon.New(cfg, logger)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := d.Start(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(out, "Watching (%s): %s\n", d.WatcherName(), cfg.Paths.WatchDir)

			<-cmd.Context().Done()
			d.Stop()
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip environment checks before watching")
	return cmd
}
