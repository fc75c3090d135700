package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/abilitygraph/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override flag defaults,
// e.g. ABILITYGRAPH_LOG_LEVEL.
const EnvPrefix = "ABILITYGRAPH"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `abilitygraph validates ability graphs declared in HCL files.

Every component declared in the given files is added to a registry, every
ref block becomes an edge, and the whole graph is validated: slot indexes
are resolved, types are checked, duplicate and cyclic references are
reported. A valid graph is committed and summarised; an invalid one is
reported with every diagnostic.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg *app.Config
	cmd := &cobra.Command{
		Use:           "abilitygraph [flags] PATH...",
		Short:         "Validate ability graphs declared in HCL files.",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			paths := append(v.GetStringSlice("path"), positional...)
			if len(paths) == 0 {
				slog.Debug("No ability path provided, printing usage and exiting.")
				return cmd.Usage()
			}
			slog.Debug("Ability paths determined.", "paths", paths)

			var err error
			cfg, err = app.NewConfig(app.Config{
				Paths:        paths,
				LogFormat:    strings.ToLower(v.GetString("log-format")),
				LogLevel:     strings.ToLower(v.GetString("log-level")),
				ReportFormat: strings.ToLower(v.GetString("format")),
				Trace:        v.GetBool("trace"),
			})
			return err
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringSliceP("path", "p", nil, "Ability file or directory. May be repeated.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringP("format", "f", "text", "Report format. Options: 'text' or 'yaml'.")
	flags.Bool("trace", false, "Write OpenTelemetry spans of the run to stderr.")
	for _, name := range []string{"path", "log-format", "log-level", "format", "trace"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg == nil {
		// Help was requested or no path was given.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
