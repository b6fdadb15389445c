package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Chapter quiz drilling in the terminal",
	Long:  "Quizdrill — drill a chapter-tagged question bank: pick chapters, answer a randomized subset with instant feedback, review your mistakes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank (.json or .db; overrides config)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().String("debug-log", "", "Write a debug log to this file")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
