package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nl-dates/config"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/log"
	"nl-dates/pkg/nldates"
)

// ClientBuilder returns the client commands resolve dates with.
type ClientBuilder func(ctx context.Context, verbose bool) (nldates.Client, error)

type app struct {
	reference string
	verbose   bool
	newClient ClientBuilder
}

// NewRootCmd builds the nldate command tree. A nil build uses the
// configured language model.
func NewRootCmd(build ClientBuilder) *cobra.Command {
	if build == nil {
		build = configuredClient
	}
	a := &app{newClient: build}

	root := &cobra.Command{
		Use:   "nldate",
		Short: "Resolve natural-language dates with a language model",
		Long: `nldate turns phrases such as "tomorrow" or "next Tuesday" into YYYY-MM-DD dates.

The language model is configured through config/config.yaml or the environment
(LLM_PROVIDER, LLM_API_KEY, OPENAI_API_KEY, ...).

Examples:
  nldate parse "next Tuesday"
  nldate parse --reference 2025-11-18 "in 3 days"
  nldate extract "Submit report tomorrow"
  nldate check`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&a.reference, "reference", "r", "", "Reference date (YYYY-MM-DD), default today")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log model exchanges")

	root.AddCommand(a.parseCmd(), a.extractCmd(), a.checkCmd())
	return root
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	return NewRootCmd(nil).ExecuteContext(ctx)
}

// options translates the persistent flags into call options.
func (a *app) options(ctx context.Context) ([]nldates.Option, error) {
	c, err := a.newClient(ctx, a.verbose)
	if err != nil {
		return nil, err
	}
	opts := []nldates.Option{nldates.WithClient(c)}

	if a.reference != "" {
		ref, err := datemath.ParseISO(a.reference)
		if err != nil {
			return nil, fmt.Errorf("--reference: %w", err)
		}
		opts = append(opts, nldates.WithReferenceDate(ref))
	}
	return opts, nil
}

func configuredClient(ctx context.Context, verbose bool) (nldates.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	return nldates.NewClient(ctx, l, cfg.LLM)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
