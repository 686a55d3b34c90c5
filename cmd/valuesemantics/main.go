package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/marcodamonte/valuesemantics/internal/config"
	"github.com/marcodamonte/valuesemantics/internal/report"
	"github.com/marcodamonte/valuesemantics/value"
)

const appName = "valuesemantics"

// initializeAppContext runs after the command line is parsed and before any
// subcommand.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := envFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	debug := cmd.Bool("debug")
	env.Log = env.Cfg.Logging.Prepare(debug)
	if debug {
		env.restoreTrace = value.SetLogger(env.Log)
	}

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))

	if env.restoreTrace != nil {
		env.restoreTrace()
	}
	if er := env.Log.Sync(); er != nil && !isSyncNoise(er) {
		err = multierr.Append(err, fmt.Errorf("unable to flush log: %w", er))
	}
	return
}

// Syncing a console fd fails with EINVAL or ENOTTY on most platforms.
func isSyncNoise(err error) bool {
	for _, e := range multierr.Errors(err) {
		if !strings.Contains(e.Error(), "invalid argument") && !strings.Contains(e.Error(), "inappropriate ioctl") {
			return false
		}
	}
	return true
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = env.Cfg.Logging.ConsoleLogger.Level != "none"
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "copy, compare and reverse small value types",
		Version:         runtime.Version(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		DefaultCommand:  "run",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log at debug level and trace every probe lifecycle event"},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Runs the copy/compare/reverse walkthrough and prints the transcript",
				Action: runScenario,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"},
						Usage: "output `TYPE` overriding configuration (supported types: " + strings.Join(report.Formats(), ", ") + ")"},
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				Action:    outputConfiguration,
				ArgsUsage: "DESTINATION",
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// os.Exit is called at the end of main to set exit code, make sure there
	// are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
