package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards in presentation order",
	Run: func(cmd *cobra.Command, args []string) {
		store, profile, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			os.Exit(1)
		}
		defer store.Close()

		session := loadSession(store)

		fmt.Printf("Profile %q — %d cards, next first:\n\n", profile, len(session.Cards()))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Card\tStatus\tInterval\tLast result")
		fmt.Fprintln(w, "----\t------\t--------\t-----------")

		for _, c := range session.Cards() {
			last := "-"
			if c.LastResult != nil {
				last = c.LastResult.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.Factors, c.Status, c.Interval, last)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
