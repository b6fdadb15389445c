package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yichen/quizdrill/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Validate the question bank and show per-chapter counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		b, err := bank.Load(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		fmt.Printf("%s: %d questions in %d chapters\n\n", cfg.BankPath, b.Len(), len(b.Chapters()))
		for _, ch := range b.Chapters() {
			fmt.Printf("  %-40s %4d\n", ch, b.Count(ch))
		}
		return nil
	},
}
