package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/creditscore/pkg/config"
	"github.com/mchmarny/creditscore/pkg/logging"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "creditscore"
	appConfigKey = "app-config"
	configEnvVar = "CREDITSCORE_CONFIG"

	flagDebug    = "debug"
	flagLogLevel = "log-level"
	flagFormat   = "format"
	flagConfig   = "config"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	// global flags by name, true when the flag takes a value
	rootFlags = map[string]bool{
		flagDebug:    false,
		flagLogLevel: true,
		flagFormat:   true,
		flagConfig:   true,
		"version":    false,
		"v":          false,
		"help":       false,
		"h":          false,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	os.Exit(Run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// Run executes the app with args (program name first) and returns the
// process exit code. Command output and user-facing errors go to stdout,
// logs go to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)

	err := app.Run(ctx, positionalArgs(args))
	if err == nil {
		return 0
	}

	var ec urfave.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stdout, msg)
		}
		return ec.ExitCode()
	}

	slog.Debug("command failed", "error", err)
	fmt.Fprintf(stdout, "Error: %v\n", err)
	return 1
}

type appConfig struct {
	Format   string
	LogLevel string
	Stdout   io.Writer
}

func getConfig(cmd *urfave.Command) *appConfig {
	if cfg, ok := cmd.Root().Metadata[appConfigKey].(*appConfig); ok {
		return cfg
	}
	return &appConfig{Format: config.FormatJSON, LogLevel: config.DefaultLogLevel, Stdout: cmd.Root().Writer}
}

func newApp(stdout, stderr io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:            appName,
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:           "Compute a toy credit score from income, assets and credit history",
		ArgsUsage:       "<income> <assets> <history>",
		UsageText:       usageText(appName),
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Metadata:        map[string]any{},
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:  flagDebug,
				Usage: "Prints verbose logs, same as --log-level debug",
			},
			&urfave.StringFlag{
				Name:  flagLogLevel,
				Usage: "Log level [debug, info, warn, error]",
				Value: config.DefaultLogLevel,
			},
			&urfave.StringFlag{
				Name:  flagFormat,
				Usage: "Output format [json, yaml]",
				Value: config.FormatJSON,
			},
			&urfave.StringFlag{
				Name:    flagConfig,
				Usage:   "Path to an optional YAML config file",
				Sources: urfave.EnvVars(configEnvVar),
			},
		},
		Commands: []*urfave.Command{
			configCmd(),
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return ctx, err
			}
			cfg.Stdout = stdout
			logging.SetDefaultCLILogger(stderr, cfg.LogLevel)
			cmd.Metadata[appConfigKey] = cfg
			slog.Debug("config", "format", cfg.Format, "log_level", cfg.LogLevel)
			return ctx, nil
		},
		Action: cmdCalculate,
		OnUsageError: func(_ context.Context, _ *urfave.Command, err error, _ bool) error {
			return err
		},
		// exit codes are resolved by Run
		ExitErrHandler: func(context.Context, *urfave.Command, error) {},
	}
}

// loadConfig merges defaults, the optional config file and explicit flags,
// in increasing order of precedence.
func loadConfig(cmd *urfave.Command) (*appConfig, error) {
	fc, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{
		Format:   fc.Format,
		LogLevel: fc.LogLevel,
	}

	if cmd.IsSet(flagFormat) {
		f, err := config.ParseFormat(cmd.String(flagFormat))
		if err != nil {
			return nil, err
		}
		cfg.Format = f
	}

	if cmd.IsSet(flagLogLevel) {
		lvl, err := config.ParseLogLevel(cmd.String(flagLogLevel))
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}
	if cmd.Bool(flagDebug) {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// positionalArgs inserts a flag terminator ahead of the first dash-prefixed
// argument that is not a global flag, so values like -5 or -abc reach the
// command as arguments instead of failing flag parsing.
func positionalArgs(args []string) []string {
	seenPositional := false
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}

		if !strings.HasPrefix(a, "-") {
			if !seenPositional && a == configCmdName {
				return args
			}
			seenPositional = true
			continue
		}

		name, _, inline := strings.Cut(strings.TrimLeft(a, "-"), "=")
		takesValue, known := rootFlags[name]
		if !known || a == "-" {
			list := make([]string, 0, len(args)+1)
			list = append(list, args[:i]...)
			list = append(list, "--")
			return append(list, args[i:]...)
		}
		if takesValue && !inline {
			i++
		}
	}
	return args
}

type jsonMarshaler interface {
	JSON() ([]byte, error)
}

func encode(w io.Writer, format string, v any) error {
	if format == config.FormatYAML {
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return e.Close()
	}

	j, ok := v.(jsonMarshaler)
	if !ok {
		return fmt.Errorf("unsupported output type: %T", v)
	}
	b, err := j.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
