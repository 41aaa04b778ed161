package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tony-feasts/bet-sync/config"
	"github.com/tony-feasts/bet-sync/internal/adapters/jsondir"
	"github.com/tony-feasts/bet-sync/internal/adapters/notify"
	"github.com/tony-feasts/bet-sync/internal/domain"
	"github.com/tony-feasts/bet-sync/internal/report"
)

func main() {
	fs, flags := newFlagSet(os.Args[0])
	_ = fs.Parse(os.Args[1:]) // ExitOnError

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", flags.configPath)
		os.Exit(1)
	}

	applyOverrides(cfg, fs, flags)
	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	policy, err := jsondir.ParsePolicy(cfg.Load.OnError)
	if err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	slog.Debug("bet-sync report starting",
		"config", flags.configPath,
		"dir", cfg.Report.InputDirectory,
		"bank_size", cfg.Report.BankSize,
		"on_error", policy,
	)

	loader := jsondir.NewLoader(cfg.Report.InputDirectory, cfg.Load.Extension, policy)
	notifier := notify.NewConsole(cfg.Report.Table)

	repCfg := report.DefaultConfig()
	repCfg.Bank = domain.NumberFromFloat(cfg.Report.BankSize)
	repCfg.Filter.Limit = cfg.Report.Limit
	if cfg.Report.MinProfitPercentage != nil {
		minProfit := domain.NumberFromFloat(*cfg.Report.MinProfitPercentage)
		repCfg.Filter.MinProfitPercentage = &minProfit
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Los errores de carga ya se imprimieron y no cambian el exit code.
	if _, err := report.New(repCfg, loader, notifier).Run(ctx); err != nil {
		slog.Error("report failed", "err", err)
		os.Exit(1)
	}
}

// setupLogger escribe a stderr: stdout es solo para el reporte.
func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
