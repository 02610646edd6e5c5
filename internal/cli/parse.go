package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"nl-dates/pkg/nldates"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <phrase>",
		Short: "Resolve a date phrase to YYYY-MM-DD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := a.options(ctx)
			if err != nil {
				return err
			}

			d, err := nldates.CalculateDate(ctx, strings.Join(args, " "), opts...)
			if err != nil {
				return err
			}

			printf(cmd.OutOrStdout(), "%s\n", d)
			return nil
		},
	}
}
