package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/app"
	"github.com/kapu/pachinko-persona-lab/internal/config"
	"github.com/kapu/pachinko-persona-lab/internal/service/ai"
	"github.com/kapu/pachinko-persona-lab/internal/tui"
	"github.com/kapu/pachinko-persona-lab/internal/util"
)

var Version = "dev"

type logTarget int

const (
	logStdout logTarget = iota
	logStderr
	logTerminal
)

// NewRootCommand builds the command tree. opts are passed to the persona
// generator of every command.
func NewRootCommand(opts ...ai.GeneratorOption) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "personalab",
		Short:         "Generate pachinko player personas with a generative model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive persona lab (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "personalab %s\n", Version)
		},
	}

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newOptionsCmd())
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// Execute runs the CLI until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// bootstrap loads the configuration and assembles the container.
func bootstrap(ctx context.Context, target logTarget, stderr io.Writer, opts []ai.GeneratorOption) (*app.Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	var (
		logger   *zap.Logger
		closeLog func() error
	)
	switch {
	case target == logTerminal:
		logger, closeLog, err = util.NewTerminalLogger(cfg.Logging.Level, cfg.Logging.File)
	case target == logStderr && cfg.Logging.File == "":
		logger = util.NewLoggerTo(stderr, cfg.Logging.Level)
		closeLog = logger.Sync
	default:
		logger, closeLog, err = util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container, err := app.Build(ctx, cfg, logger, opts...)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("failed to assemble application services: %w", err)
	}

	cleanup := func() {
		container.Close()
		_ = closeLog()
	}
	return container, cleanup, nil
}

func runTUI(cmd *cobra.Command, opts []ai.GeneratorOption) error {
	container, cleanup, err := bootstrap(cmd.Context(), logTerminal, cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(cmd.Context(), container.TUIOptions())
}
