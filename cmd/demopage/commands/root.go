package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"demopage/internal/config"
	"demopage/internal/engine"
	"demopage/internal/telemetry"
)

var (
	cfg config.Config
	tp  *sdktrace.TracerProvider
)

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := telemetry.Shutdown(flushCtx, tp); serr != nil {
		fmt.Fprintf(os.Stderr, "Error: flush traces: %v\n", serr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "demopage",
		Short:         "Interactive UI state demo: lists, forms, modal, delayed action, table filter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(cmd.Flags()); err != nil {
				return err
			}
			tcfg := telemetry.ConfigFromEnv()
			if tcfg.ServiceName == "" {
				tcfg.ServiceName = cfg.ServiceName
			}
			if tp, err = telemetry.NewTracerProvider(cmd.Context(), tcfg); err != nil {
				return fmt.Errorf("tracing: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	config.AddFlags(root.PersistentFlags())
	root.AddCommand(tuiCmd(), tableCmd(), scriptCmd())
	return root
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// newEngine builds an engine with the configured tracer, logger and initial
// table filter.
func newEngine(logger *slog.Logger) *engine.Engine {
	e := engine.New(
		engine.WithLogger(logger),
		engine.WithTracer(telemetry.Tracer(tp)),
	)
	if cfg.Status != "" {
		e.FilterTableByStatus(cfg.Status)
	}
	return e
}
