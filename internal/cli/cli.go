// Package cli holds the cobra commands behind every binary in cmd/ and the
// shared startup path: environment, logger, exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hello-web/internal/config"
	"hello-web/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUsage means the usage text has already been printed.
var ErrUsage = errors.New("usage")

// Execute runs cmd with the process arguments and exits with its status.
func Execute(cmd *cobra.Command) {
	os.Exit(Run(context.Background(), cmd, os.Args[1:]))
}

// Run executes cmd and maps its outcome to a process exit status.
func Run(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if !errors.Is(err, ErrUsage) {
		report(cmd.ErrOrStderr(), err)
	}
	return 1
}

// report prints a fatal error through a console logger so it reads like
// the rest of the output.
func report(stderr io.Writer, err error) {
	l := logger.NewConsole(stderr)
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
}

// bootstrap loads configuration from the working directory, lets override
// adjust it, and installs the resulting logger as the zap global.
func bootstrap(override func(*config.Config)) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	if override != nil {
		override(cfg)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	zap.ReplaceGlobals(log)

	return cfg, log, nil
}

func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
