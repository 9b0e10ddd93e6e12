package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/zarlcorp/zspecimen/internal/cli"
	"github.com/zarlcorp/zspecimen/internal/config"
	"github.com/zarlcorp/zspecimen/internal/logger"
	"github.com/zarlcorp/zspecimen/internal/manifest"
	"github.com/zarlcorp/zspecimen/internal/synth"
	"github.com/zarlcorp/zspecimen/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zspecimen"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	err := run(ctx, os.Args[1:])
	_ = app.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zspecimen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "version":
		fmt.Printf("zspecimen %s\n", version)
		return nil
	case "regions":
		cli.CmdRegions(os.Stdout)
		return nil
	case "", "generate":
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	if len(args) > 0 {
		args = args[1:]
	}
	opts, err := cli.ParseOptions(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.GenAI.Configured() {
		return errors.New("GEMINI_API_KEY is not set")
	}

	interactive := cmd == "" && term.IsTerminal(int(os.Stdout.Fd()))
	log, err := newLogger(cfg.Log, interactive)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s, err := synth.NewGenAI(ctx, cfg.GenAI.Synth(), log)
	if err != nil {
		return err
	}

	exporter, err := newExporter(cfg.ExportDir)
	if err != nil {
		return err
	}

	if interactive {
		return runTUI(ctx, s, exporter, opts)
	}
	return cli.CmdGenerate(ctx, os.Stdout, s, exporter, opts)
}

// newLogger keeps log lines off the terminal while the TUI owns it.
func newLogger(cfg config.LogConfig, interactive bool) (*zap.Logger, error) {
	if interactive && (cfg.Output == "" || cfg.Output == "stderr" || cfg.Output == "stdout") {
		return zap.NewNop(), nil
	}
	return logger.New(cfg)
}

func newExporter(dir string) (*manifest.Exporter, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return manifest.NewExporter(zfilesystem.NewOSFileSystem(dir)), nil
}

func runTUI(ctx context.Context, s tui.Synthesizer, e tui.Exporter, opts cli.Options) error {
	m := tui.New(ctx, version, s, e, opts.Filter)
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}
