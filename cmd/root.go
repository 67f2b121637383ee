package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagProfile string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "multidrill",
	Short: "A spaced repetition trainer for times tables",
	Long: `Multidrill drills multiplication tables using a spaced repetition
schedule: missed products come back quickly, mastered ones rarely.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProfile, "profile", "p", "", "practice profile (default from MULTIDRILL_PROFILE)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
