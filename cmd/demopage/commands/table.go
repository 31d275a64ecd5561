package commands

import (
	"os"

	"github.com/spf13/cobra"

	"demopage/internal/printers"
)

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the user table (filter with --status)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine(newLogger(os.Stderr))
			defer e.Close()

			printers.New(cmd.OutOrStdout()).Rows(e.Snapshot().VisibleRows)
			return nil
		},
	}
}
