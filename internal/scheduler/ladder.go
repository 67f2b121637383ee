package scheduler

// Ladder is the fixed ascending sequence of review spacings, in ticks.
// It is a pure policy table: cards move one rung up per correct answer
// and drop to the first rung on a miss.
type Ladder []int

// DefaultLadder is the spacing sequence used for times-table practice.
var DefaultLadder = Ladder{2, 3, 5, 8, 13, 21, 34, 55}

// First returns the smallest rung, used to (re)start a card.
func (l Ladder) First() int {
	return l[0]
}

// Last returns the largest rung. A card whose interval reaches it is
// considered learned.
func (l Ladder) Last() int {
	return l[len(l)-1]
}

// Next returns the rung after current, clamped to the top. A value that
// is not on the ladder falls back to the first rung, so a desynced
// interval (e.g. from an old saved profile) cannot stall progression.
func (l Ladder) Next(current int) int {
	for i, rung := range l {
		if rung != current {
			continue
		}
		if i+1 < len(l) {
			return l[i+1]
		}
		return l.Last()
	}
	return l.First()
}
