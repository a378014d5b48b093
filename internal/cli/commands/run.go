package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fsrun/internal/cli"
	"fsrun/internal/config"
	"fsrun/internal/discovery"
	"fsrun/internal/domain"
	"fsrun/internal/execution"
	"fsrun/internal/logging"
	"fsrun/internal/ui"
)

// RunCommand runs a test directory against the tool under test
type RunCommand struct {
	stdout io.Writer
	stderr io.Writer
	getenv config.GetenvFunc
	getwd  func() (string, error)
	runner execution.ProcessRunner
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(stdout, stderr io.Writer) *RunCommand {
	return &RunCommand{
		stdout: stdout,
		stderr: stderr,
		getenv: os.Getenv,
		getwd:  os.Getwd,
		runner: execution.NewExecRunner(),
	}
}

// Execute runs the command. Any failure is reported on stderr and turned
// into an exit status 1.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := rc.run(ctx, args)
	if err == nil {
		return nil
	}

	opts := ui.ReporterOptions{Color: ui.ColorEnabled(rc.stderr, rc.getenv)}
	if cfg != nil {
		opts.Verbose = cfg.Verbose
	}
	ui.NewReporter(rc.stderr, opts).Report(err)

	return &cli.ExitError{Code: cli.ExitFailure, Err: err}
}

func (rc *RunCommand) run(ctx context.Context, args []string) (*config.Config, error) {
	cwd, err := rc.getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	fmt.Fprintln(rc.stdout, cwd)

	if err := config.CheckArgs(args); err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(filepath.Join(cwd, config.DefaultEnvFile)); err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(args, cwd, rc.getenv)
	if err != nil {
		return nil, err
	}

	logger := logging.New(rc.stderr, logging.Options{
		Verbose: cfg.Verbose,
		Format:  cfg.LogFormat,
		RunID:   logging.NewRunID(),
	})
	logger.Debug("configuration resolved",
		"executable", cfg.ExecutablePath,
		"dir", cfg.TestDir,
		"scratch", cfg.ScratchPath,
		"compare", cfg.Compare,
	)

	if err := os.Chdir(cfg.TestDir); err != nil {
		return cfg, &domain.DiscoveryError{Dir: cfg.TestDir, Err: err}
	}

	comparator, err := execution.NewComparator(cfg.Compare, rc.runner)
	if err != nil {
		return cfg, err
	}
	executor := execution.NewExecutor(cfg, rc.runner, comparator, logger)
	scanner := discovery.NewScanner(discovery.NewFilter(cfg.Pattern))
	suite := execution.NewSuite(cfg, scanner, discovery.NewParser(), executor, logger)

	var progress *ui.ProgressBar
	if cfg.ShowProgress(ui.IsTerminal(rc.stderr)) {
		progress = ui.NewProgressBar(rc.stderr, ui.ColorEnabled(rc.stderr, rc.getenv))
		suite.SetObserver(progress)
	}

	summary, err := suite.Run(ctx)
	if progress != nil {
		if err != nil {
			progress.Clear()
		} else {
			progress.Finish()
		}
	}
	if err != nil {
		return cfg, err
	}

	logger.Info("all tests passed",
		"files", summary.Files,
		"cases", summary.Cases,
		"duration", summary.Duration,
	)
	return cfg, nil
}
