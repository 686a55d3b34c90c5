package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/marcodamonte/valuesemantics/internal/config"
	"github.com/marcodamonte/valuesemantics/internal/report"
	"github.com/marcodamonte/valuesemantics/internal/scenario"
)

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func runScenario(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	format := cmd.String("format")
	if len(format) == 0 {
		format = env.Cfg.Output.Format
	}
	if !report.IsValid(format) {
		return fmt.Errorf("%w %q", report.ErrUnknownFormat, format)
	}

	tr, runErr := scenario.Run(ctx, scenario.OptionsFromConfig(env.Cfg, env.Log))
	if err := report.Write(writer(cmd), format, tr); err != nil {
		return multierr.Append(runErr, fmt.Errorf("unable to write transcript: %w", err))
	}
	return runErr
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		data  []byte
		state string
	)

	out := writer(cmd)
	if len(fname) > 0 {
		f, cerr := os.Create(fname)
		if cerr != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, cerr)
		}
		defer func() {
			if er := f.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close destination file '%s': %w", fname, er))
			}
		}()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputting configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
