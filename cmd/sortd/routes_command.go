package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sortd/internal/routes"
)

func newRoutesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Show the effective route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			table := routes.New(cfg.Routes)
			rules := table.Rules()
			rows := make([][]string, 0, len(rules))
			for i, rule := range rules {
				kind := "keyword"
				if strings.ContainsAny(rule.Pattern, "*?[]") {
					kind = "glob"
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					rule.Pattern,
					kind,
					rule.Folder,
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No routes configured")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Pattern", "Type", "Folder"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
