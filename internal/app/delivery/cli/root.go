package cli

import (
	"daily-journal-service/internal/app/drivers/logger"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	Verbose bool
	Out     io.Writer
}

func (o *RootOptions) logger() *logrus.Logger {
	return logger.NewLogrusLogger(o.Out, o.Verbose)
}

// NewRootCommand builds the journalctl command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &RootOptions{Out: out}

	cmd := &cobra.Command{
		Use:           "journalctl",
		Short:         "Operator tools for the daily journal service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewQuoteCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
