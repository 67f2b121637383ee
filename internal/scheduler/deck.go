package scheduler

import (
	"math/rand"

	"github.com/LavenderBridge/multidrill/internal/models"
)

// Factor bounds of the drilled times tables, inclusive.
const (
	factorMin = 2
	factorMax = 9
)

// NewDeck generates the full times-table universe in shuffled order.
// Every card starts Unseen with its interval preset to the ladder's
// first rung.
func NewDeck(ladder Ladder, rng *rand.Rand) []models.Card {
	n := factorMax - factorMin + 1
	cards := make([]models.Card, 0, n*n)
	for x := factorMin; x <= factorMax; x++ {
		for y := factorMin; y <= factorMax; y++ {
			cards = append(cards, models.Card{
				Factors:  models.Factors{X: uint8(x), Y: uint8(y)},
				Interval: ladder.First(),
				Status:   models.Unseen{},
			})
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
