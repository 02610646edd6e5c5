package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nl-dates/pkg/datemath"
	"nl-dates/pkg/nldates"
)

type checkCase struct {
	phrase string
	want   string
}

// checkReference is a Tuesday.
const checkReference = "2025-11-18"

var checkCases = []checkCase{
	{phrase: "tomorrow", want: "2025-11-19"},
	{phrase: "a week from today", want: "2025-11-25"},
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run known phrases against the configured model",
		Long:  "check resolves a fixed set of phrases relative to " + checkReference + " and compares the answers with the expected dates.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.newClient(ctx, a.verbose)
			if err != nil {
				return err
			}

			ref := datemath.MustParseISO(checkReference)
			out := cmd.OutOrStdout()
			pass := color.New(color.FgGreen, color.Bold)
			fail := color.New(color.FgRed, color.Bold)

			failed := 0
			for _, tc := range checkCases {
				got, err := nldates.CalculateDate(ctx, tc.phrase, nldates.WithClient(c), nldates.WithReferenceDate(ref))
				switch {
				case err != nil:
					failed++
					printf(out, "%s %q: %v\n", fail.Sprint("FAIL"), tc.phrase, err)
				case got.String() != tc.want:
					failed++
					printf(out, "%s %q: got %s, want %s\n", fail.Sprint("FAIL"), tc.phrase, got, tc.want)
				default:
					printf(out, "%s %q -> %s\n", pass.Sprint("PASS"), tc.phrase, got)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(checkCases))
			}
			return nil
		},
	}
}
