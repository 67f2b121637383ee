package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/LavenderBridge/multidrill/internal/config"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a profile's saved progress",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Println("❌ Config error:", err)
			os.Exit(1)
		}
		profile := resolveProfile(cfg)
		path := cfg.ProfilePath(profile)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("Profile %q has no saved progress.\n", profile)
			return
		}

		if !resetForce {
			fmt.Printf("Delete saved progress for profile %q? (y/N): ", profile)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Cancelled.")
				return
			}
		}

		if err := os.Remove(path); err != nil {
			fmt.Println("❌ Failed to delete profile:", err)
			os.Exit(1)
		}
		fmt.Printf("🗑️  Deleted saved progress for profile %q.\n", profile)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip confirmation")
}
