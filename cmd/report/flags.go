package main

import (
	"flag"

	"github.com/tony-feasts/bet-sync/config"
)

// cliFlags son los overrides de línea de comandos sobre config.yaml.
type cliFlags struct {
	configPath string
	dir        string
	bank       float64
	onError    string
	table      bool
	limit      int
	verbose    bool
	logFormat  string
}

func newFlagSet(name string) (*flag.FlagSet, *cliFlags) {
	f := &cliFlags{}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&f.configPath, "config", "config/config.yaml", "path to config file (optional)")
	fs.StringVar(&f.dir, "dir", "", "directory with arbitrage JSON files (overrides config)")
	fs.Float64Var(&f.bank, "bank", 0, "bank size used for bet allocation (overrides config)")
	fs.StringVar(&f.onError, "on-error", "", "load failure policy: stop|skip (overrides config)")
	fs.BoolVar(&f.table, "table", false, "print a summary table after the report (overrides config)")
	fs.IntVar(&f.limit, "limit", 0, "print only the top N opportunities, 0 = all (overrides config)")
	fs.BoolVar(&f.verbose, "verbose", false, "set log level to debug")
	fs.StringVar(&f.logFormat, "format", "", "log format: text|json (overrides config)")
	return fs, f
}

// applyOverrides copia a cfg solo los flags que el usuario pasó, así
// -table=false o -bank 0 también pisan el YAML. Validate decide después.
func applyOverrides(cfg *config.Config, fs *flag.FlagSet, f *cliFlags) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dir":
			cfg.Report.InputDirectory = f.dir
		case "bank":
			cfg.Report.BankSize = f.bank
		case "on-error":
			cfg.Load.OnError = f.onError
		case "table":
			cfg.Report.Table = f.table
		case "limit":
			cfg.Report.Limit = f.limit
		case "verbose":
			if f.verbose {
				cfg.Log.Level = "debug"
			}
		case "format":
			cfg.Log.Format = f.logFormat
		}
	})
}
