package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/app"
	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/logging"
)

// loadConfig resolves config from flags, file, and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if p, _ := cmd.Flags().GetString("debug-log"); p != "" {
		cfg.DebugLog = p
	}
	return cfg, nil
}

// runApp loads the bank, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.DebugLog)
	defer logger.Sync() //nolint:errcheck

	b, err := bank.Load(cfg.BankPath)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	logger.Debug("bank loaded",
		zap.String("path", cfg.BankPath),
		zap.Int("questions", b.Len()),
		zap.Int("chapters", len(b.Chapters())),
	)

	return app.Run(app.Options{
		Bank:   b,
		Config: cfg,
		Logger: logger,
	})
}
