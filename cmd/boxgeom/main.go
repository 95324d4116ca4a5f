package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/benoitkugler/boxgeom/config"
	pr "github.com/benoitkugler/boxgeom/css/properties"
	"github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/html/layout"
	"github.com/benoitkugler/boxgeom/logger"
	"github.com/benoitkugler/boxgeom/utils"
	"github.com/benoitkugler/boxgeom/utils/testutils/tracer"
)

type envKey struct{}

// env is shared by the commands, and set up once the command line is parsed
type env struct {
	cfg *config.Config
}

func envFromContext(ctx context.Context) *env {
	return ctx.Value(envKey{}).(*env)
}

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	e := envFromContext(ctx)

	configFile := cmd.String("config")
	if e.cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	level := e.cfg.Logging.Level
	if cmd.Bool("debug") {
		level = "debug"
	}
	if err = logger.Configure(level); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	logger.ProgressLogger.Debugw("Program started", "args", os.Args, "ver", utils.Version, "runtime", runtime.Version())
	if len(configFile) == 0 {
		logger.ProgressLogger.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(context.Context, *cli.Command) error {
	logger.ProgressLogger.Debug("Program ended")
	return nil
}

// Ignore urfave/cli default error handling, which exits the process on
// multiple errors: errors are returned from Run and reported by main.
func exitErrHandler(_ context.Context, _ *cli.Command, err error) {
	logger.ProgressLogger.Debugw("Program ended with error", "error", err)
}

// resolveFiles lays out every FILE argument and dumps the resolved geometry.
// Files are processed independently and all the failures are reported.
func resolveFiles(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	if cmd.NArg() == 0 {
		return fmt.Errorf("missing FILE argument")
	}

	width, height := e.cfg.PageSize()
	if cmd.IsSet("width") {
		width = pr.Float(cmd.Float("width"))
	}
	if cmd.IsSet("height") {
		height = pr.Float(cmd.Float("height"))
	}
	parallel := e.cfg.Layout.Parallel || cmd.Bool("parallel")

	out := tracer.NewTracerWriter(cmd.Root().Writer)
	var errs error
	for _, file := range cmd.Args().Slice() {
		page, err := resolveFile(ctx, file, width, height, parallel, e.cfg.Layout.Workers)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		out.DumpTree(page, filepath.Base(file))
	}
	if errs != nil {
		return fmt.Errorf("resolving files: %w", errs)
	}
	return nil
}

func resolveFile(ctx context.Context, file string, width, height pr.MaybeFloat, parallel bool, workers int) (*boxes.PageBox, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	page, err := boxes.BuildFromHTML(f, nil)
	if err != nil {
		return nil, err
	}
	if parallel {
		err = layout.LayoutParallel(ctx, page, width, height, workers)
	} else {
		err = layout.Resolve(page, width, height)
	}
	if err != nil {
		return nil, err
	}
	if err = layout.Check(page); err != nil {
		return nil, err
	}
	return page, nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	data := config.DefaultConfig
	if !cmd.Bool("default") {
		var err error
		if data, err = config.Dump(envFromContext(ctx).cfg); err != nil {
			return err
		}
	}
	if cmd.NArg() == 0 {
		_, err := cmd.Root().Writer.Write(data)
		return err
	}
	if err := os.WriteFile(cmd.Args().First(), data, 0o644); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "boxgeom",
		Usage:           "resolves the used geometry of block boxes",
		Version:         utils.VersionString + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log the progress of the layout"},
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     "Lays out HTML file(s) and prints the used geometry of the boxes",
				Action:    resolveFiles,
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "width", Usage: "outer page width in `PIXELS`, overriding the configuration"},
					&cli.FloatFlag{Name: "height", Usage: "outer page height in `PIXELS`, overriding the configuration"},
					&cli.BoolFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "resolve the subtrees of the page concurrently"},
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
	ctx, stop := signal.NotifyContext(context.WithValue(context.Background(), envKey{}, &env{}), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "boxgeom: %v\n", err)
		os.Exit(1)
	}
}
