package cli

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nl-dates/pkg/nldates"
)

func (a *app) extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <task>",
		Short: "Split a task description into text and date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := a.options(ctx)
			if err != nil {
				return err
			}

			text, d, err := nldates.ExtractDate(ctx, strings.Join(args, " "), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			label := color.New(color.Faint)
			printf(out, "%s %s\n", label.Sprint("task:"), text)
			if d == nil {
				printf(out, "%s %s\n", label.Sprint("date:"), color.New(color.FgYellow).Sprint("none"))
				return nil
			}
			printf(out, "%s %s\n", label.Sprint("date:"), color.New(color.FgCyan).Sprint(d.String()))
			return nil
		},
	}
}
