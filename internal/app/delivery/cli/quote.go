package cli

import (
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/services/core/quotes"
	"daily-journal-service/internal/pkg/dailyselect"
	"daily-journal-service/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type quoteOptions struct {
	date string
	file string
	now  func() time.Time
}

// NewQuoteCommand prints the quote selected for a date without touching any backing
// service.
func NewQuoteCommand(root *RootOptions) *cobra.Command {
	opts := &quoteOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day",
		Example: `  journalctl quote
  journalctl quote --date 2024-12-31
  journalctl quote --file ./quotes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "calendar date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.file, "file", "", "YAML quote list (default bundled list)")

	return cmd
}

func runQuote(root *RootOptions, opts *quoteOptions) error {
	log := root.logger()

	location := config.NewInternalConfig().App.Location
	if location == nil {
		location = time.UTC
	}

	day := opts.now().In(location)
	if opts.date != "" {
		parsed, err := utils.ParseDate(opts.date, location)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", opts.date, err)
		}
		day = parsed
	}

	candidates, err := quotes.LoadQuotes(opts.file)
	if err != nil {
		return err
	}

	dateKey := dailyselect.DateKey(day)
	quote, index, err := dailyselect.SelectIndexed(dateKey, candidates)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"date":       utils.FormatDate(day),
		"date_key":   dateKey,
		"index":      index,
		"candidates": len(candidates),
	}).Debug("quote selected")

	if quote.Author != "" {
		fmt.Fprintf(root.Out, "%s  [%s #%d]\n%s\n  - %s\n", utils.FormatDate(day), dateKey, index, quote.Text, quote.Author)
		return nil
	}
	fmt.Fprintf(root.Out, "%s  [%s #%d]\n%s\n", utils.FormatDate(day), dateKey, index, quote.Text)
	return nil
}
