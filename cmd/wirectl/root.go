package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/linera-bridge/guest"
	"github.com/wippyai/linera-bridge/lift"
)

type app struct {
	configPath string
	cfg        config
	log        *zap.Logger

	// flag values, applied over the config file when set
	schema           string
	format           string
	logLevel         string
	memoryLimitPages uint32
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "wirectl",
		Short:         "Inspect and decode Linera wire values in guest memory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file")
	flags.StringVar(&a.schema, "schema", "", "wire schema: service, contract or contract-runtime")
	flags.StringVar(&a.format, "format", "", "output format: yaml or text")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.Uint32Var(&a.memoryLimitPages, "memory-limit-pages", 0, "guest memory limit in 64 KiB pages")

	root.AddCommand(a.typesCmd(), a.decodeCmd(), a.inspectCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("schema") {
		cfg.Schema = a.schema
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("memory-limit-pages") {
		cfg.MemoryLimitPages = a.memoryLimitPages
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := cfg.logger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	lift.SetLogger(log.Named("lift"))
	guest.SetLogger(log.Named("guest"))

	log.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.String("schema", cfg.Schema),
		zap.String("format", cfg.Format))
	return nil
}
