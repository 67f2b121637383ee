package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/LavenderBridge/multidrill/internal/models"
)

// Session owns the ordered card deck and the logical clock. The deck
// order IS the presentation priority: Peek always returns the head, and
// every Review re-sorts the whole deck. One snapshot enables a single
// level of undo. Sessions are not safe for concurrent use; the driver
// loop is strictly sequential.
type Session struct {
	ladder   Ladder
	cards    []models.Card
	tick     int
	snapshot *snapshot
	now      func() time.Time
}

type snapshot struct {
	cards []models.Card
	tick  int
}

// New creates a session over a freshly shuffled universe.
func New(rng *rand.Rand) *Session {
	return FromCards(DefaultLadder, NewDeck(DefaultLadder, rng))
}

// FromCards creates a session over an explicit card sequence and sorts
// it into presentation order.
func FromCards(ladder Ladder, cards []models.Card) *Session {
	s := &Session{
		ladder: ladder,
		cards:  cards,
		now:    time.Now,
	}
	s.rebuild()
	return s
}

// Tick returns the logical clock value: the number of reviews applied
// so far, net of rollbacks.
func (s *Session) Tick() int {
	return s.tick
}

// Cards returns a copy of the deck in current presentation order.
func (s *Session) Cards() []models.Card {
	return cloneCards(s.cards)
}

// Peek returns the next card to present. It is pure and repeatable, and
// returns false only for an empty deck. Callers get a value copy; the
// session keeps exclusive ownership of its cards.
func (s *Session) Peek() (models.Card, bool) {
	if len(s.cards) == 0 {
		return models.Card{}, false
	}
	return s.cards[0].Clone(), true
}

// Review applies rating to the card Peek returns, advances the clock by
// one, and re-sorts the deck. The pre-review state is snapshotted so
// exactly the most recent review can be undone.
//
// With t the clock value before the increment: a bad answer resets the
// interval to the first rung, a good answer advances it one rung
// (saturating at the top); the card is due again at t+1+interval and is
// learned when its interval has reached the top rung.
func (s *Session) Review(rating models.Rating) {
	if len(s.cards) == 0 {
		return
	}
	s.snapshot = &snapshot{cards: cloneCards(s.cards), tick: s.tick}
	head := s.cards[0]

	var interval int
	if rating == models.Bad {
		interval = s.ladder.First()
	} else {
		interval = s.ladder.Next(head.Interval)
	}

	due := s.tick + 1 + interval
	var status models.Status
	if interval == s.ladder.Last() {
		status = models.Learned{Due: due}
	} else {
		status = models.Learning{Due: due}
	}

	// Locate by identity: the head index is invalidated by the re-sort
	// on the previous review, and by this one.
	for i := range s.cards {
		if s.cards[i].Factors != head.Factors {
			continue
		}
		card := &s.cards[i]
		card.Interval = interval
		card.Status = status
		result := rating
		card.LastResult = &result
		seen := s.now().Unix()
		card.LastSeen = &seen
		break
	}

	s.tick++
	s.rebuild()
}

// Rollback restores the deck and clock captured by the last Review and
// discards the snapshot. Without an intervening Review it is a no-op,
// so only one level of undo exists.
func (s *Session) Rollback() {
	if s.snapshot == nil {
		return
	}
	s.cards = s.snapshot.cards
	s.tick = s.snapshot.tick
	s.snapshot = nil
}

// ApplyChanges overlays previously saved cards onto the deck, matching
// by identity. Saved cards whose identity is no longer in the universe
// are dropped; unmatched deck entries stay Unseen in shuffle position.
func (s *Session) ApplyChanges(saved []models.Card) {
	byID := make(map[models.Factors]models.Card, len(saved))
	for _, c := range saved {
		byID[c.Factors] = c
	}
	for i := range s.cards {
		if c, ok := byID[s.cards[i].Factors]; ok {
			// Clone: the session must not share pointer fields with
			// the caller's slice.
			s.cards[i] = c.Clone()
		}
	}
	s.rebuild()
}

// CardsToSave extracts the reviewed cards for persistence. Due values
// are re-based by subtracting min(tick, minimum due), so a reload into
// a session whose clock restarts at zero preserves relative due order
// and gaps exactly.
func (s *Session) CardsToSave() []models.Card {
	offset := s.tick
	for _, c := range s.cards {
		if due, ok := models.DueOf(c.Status); ok && due < offset {
			offset = due
		}
	}

	var out []models.Card
	for _, c := range s.cards {
		var status models.Status
		switch st := c.Status.(type) {
		case models.Learning:
			status = models.Learning{Due: st.Due - offset}
		case models.Learned:
			status = models.Learned{Due: st.Due - offset}
		default:
			continue
		}
		saved := c.Clone()
		saved.Status = status
		out = append(out, saved)
	}
	return out
}

// Presentation classes, highest priority first. Ready learning cards
// lead, then unseen cards in their original shuffle order, then learned
// cards, and only as a last resort a learning card that is not yet due.
const (
	classReady = iota
	classUnseen
	classLearned
	classWaiting
)

type rank struct {
	class int
	due   int
}

func (s *Session) rankOf(c models.Card) rank {
	switch st := c.Status.(type) {
	case models.Learning:
		if st.Due <= s.tick {
			return rank{classReady, st.Due}
		}
		return rank{classWaiting, st.Due}
	case models.Learned:
		return rank{classLearned, st.Due}
	default:
		// Unseen: the stable sort keeps shuffle order within the class.
		return rank{classUnseen, 0}
	}
}

// rebuild recomputes presentation order over the whole deck: one rank
// key per card, then a stable sort on (class, due).
func (s *Session) rebuild() {
	type rankedCard struct {
		card models.Card
		rank rank
	}
	ranked := make([]rankedCard, len(s.cards))
	for i, c := range s.cards {
		ranked[i] = rankedCard{card: c, rank: s.rankOf(c)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].rank, ranked[j].rank
		if a.class != b.class {
			return a.class < b.class
		}
		return a.due < b.due
	})
	for i, rc := range ranked {
		s.cards[i] = rc.card
	}
}

func cloneCards(cards []models.Card) []models.Card {
	out := make([]models.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
