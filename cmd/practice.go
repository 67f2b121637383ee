package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LavenderBridge/multidrill/internal/logging"
	"github.com/LavenderBridge/multidrill/internal/models"
	"github.com/spf13/cobra"
)

var practiceCount int

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a drill session",
	Long: `Start an interactive drill session.
Type the answer and press Enter. "u" undoes the previous answer,
"q" quits. Progress is saved when the session ends.`,
	Run: func(cmd *cobra.Command, args []string) {
		log, err := logging.New(flagVerbose)
		if err != nil {
			fmt.Println("❌ Logger error:", err)
			os.Exit(1)
		}
		defer log.Sync()

		store, profile, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			os.Exit(1)
		}
		defer store.Close()

		session := loadSession(store)

		reader := bufio.NewReader(os.Stdin)
		ok, ko := 0, 0
		var lastCorrect *bool

		fmt.Printf("Profile %q — answer, u to undo, q to quit.\n\n", profile)

	drill:
		for practiceCount == 0 || ok+ko < practiceCount {
			card, found := session.Peek()
			if !found {
				break
			}
			log.Debugw("peek",
				"card", card.Factors.String(),
				"interval", card.Interval,
				"status", fmt.Sprint(card.Status),
				"tick", session.Tick(),
			)

			fmt.Printf("%s = ", card.Factors)
			line, err := reader.ReadString('\n')
			if err != nil {
				// EOF: quit and save what we have.
				fmt.Println()
				break
			}

			switch input := strings.TrimSpace(line); input {
			case "q":
				break drill
			case "u":
				session.Rollback()
				if lastCorrect != nil {
					if *lastCorrect {
						ok--
					} else {
						ko--
					}
					lastCorrect = nil
					fmt.Println("↩️  Undid last answer.")
				} else {
					fmt.Println("⚠️ Nothing to undo.")
				}
			case "":
				continue
			default:
				value, err := strconv.Atoi(input)
				if err != nil {
					fmt.Println("⚠️ Enter a number, u to undo, or q to quit.")
					continue
				}

				expected := card.Factors.Product()
				correct := value == expected
				if correct {
					fmt.Println("✅ OK")
					ok++
					session.Review(models.Good)
				} else {
					fmt.Printf("❌ KO — %s = %d\n", card.Factors, expected)
					ko++
					session.Review(models.Bad)
				}
				lastCorrect = &correct
			}
		}

		fmt.Printf("\nSummary: %d OK, %d KO\n", ok, ko)

		if err := store.SaveCards(session.CardsToSave()); err != nil {
			fmt.Println("❌ Failed to save progress:", err)
			os.Exit(1)
		}
		fmt.Printf("💾 Progress saved to profile %q.\n", profile)
	},
}

func init() {
	rootCmd.AddCommand(practiceCmd)
	practiceCmd.Flags().IntVarP(&practiceCount, "count", "c", 0, "stop after this many answers (0 = until quit)")
}
