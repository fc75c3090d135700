package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/abilitygraph/internal/app"
	"github.com/specialistvlad/abilitygraph/internal/cli"
	"github.com/specialistvlad/abilitygraph/internal/hcl_adapter"
	"github.com/specialistvlad/abilitygraph/internal/tracing"
)

// main is the entrypoint for the abilitygraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The report goes to outW, logs and usage errors to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	provider, err := tracing.NewProvider(tracing.Config{Enabled: appConfig.Trace, Exporter: "stdout"}, errW)
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := provider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil && err == nil {
			err = fmt.Errorf("failed to flush traces: %w", shutdownErr)
		}
	}()

	loader := hcl_adapter.NewLoader()
	abilityApp := app.NewApp(outW, errW, appConfig, loader, app.WithTracer(provider.Tracer()))

	if err := abilityApp.Run(ctx); err != nil {
		if errors.Is(err, app.ErrInvalidAbility) {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
		return err
	}
	return nil
}
