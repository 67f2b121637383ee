package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/LavenderBridge/multidrill/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress for a profile",
	Run: func(cmd *cobra.Command, args []string) {
		store, profile, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			os.Exit(1)
		}
		defer store.Close()

		session := loadSession(store)

		var unseen, learning, ready, learned int
		var goodCount, badCount int
		for _, c := range session.Cards() {
			switch st := c.Status.(type) {
			case models.Unseen:
				unseen++
			case models.Learning:
				learning++
				if st.Due <= session.Tick() {
					ready++
				}
			case models.Learned:
				learned++
			}
			if c.LastResult != nil {
				if *c.LastResult == models.Good {
					goodCount++
				} else {
					badCount++
				}
			}
		}

		fmt.Printf("📊 Profile %q\n\n", profile)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Status\tCards")
		fmt.Fprintln(w, "------\t-----")
		fmt.Fprintf(w, "unseen\t%d\n", unseen)
		fmt.Fprintf(w, "learning\t%d (%d ready)\n", learning, ready)
		fmt.Fprintf(w, "learned\t%d\n", learned)
		w.Flush()

		if goodCount+badCount > 0 {
			pct := 100 * float64(goodCount) / float64(goodCount+badCount)
			fmt.Printf("\nLast results: %d good, %d bad (%.0f%% good)\n", goodCount, badCount, pct)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
