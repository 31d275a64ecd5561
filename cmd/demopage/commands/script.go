package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"demopage/internal/printers"
	"demopage/internal/script"
)

func scriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script [file]",
		Short: "Run an intent script (stdin when no file) and print the final state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			cmds, err := script.Parse(in)
			if err != nil {
				return err
			}

			logger := newLogger(os.Stderr)
			e := newEngine(logger)
			defer e.Close()

			runErr := script.NewRunner(e, cfg.Delay, logger).Run(cmd.Context(), cmds)
			printers.New(cmd.OutOrStdout()).Snapshot(e.Snapshot())
			if runErr != nil {
				return fmt.Errorf("script: %w", runErr)
			}
			return nil
		},
	}
}
