package models

import (
	"encoding"
	"errors"
	"fmt"
)

// ErrInvalidRating is returned when a rating name or value is not
// recognized. Check with errors.Is.
var ErrInvalidRating = errors.New("models: invalid rating")

// Factors identifies a drill item: an ordered pair of small factors.
// It is comparable and safe to use as a map key.
type Factors struct {
	X uint8
	Y uint8
}

// Product returns the expected answer for the item. The scheduler never
// calls this; answer checking belongs to the driver.
func (f Factors) Product() int {
	return int(f.X) * int(f.Y)
}

func (f Factors) String() string {
	return fmt.Sprintf("%d x %d", f.X, f.Y)
}

// Rating is the outcome of a single review: the learner either knew the
// answer or did not.
type Rating int

const (
	Good Rating = iota + 1
	Bad
)

var (
	ratingNames  = [...]string{Good: "good", Bad: "bad"}
	ratingByName = map[string]Rating{
		"good": Good,
		"bad":  Bad,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is Good or Bad.
func (r Rating) IsValid() bool {
	return r == Good || r == Bad
}

// String returns "good" or "bad"; invalid values format as "Rating(n)".
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, ok := ratingByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRating, text)
	}
	*r = v
	return nil
}

// Status is the card lifecycle as a closed sum: Unseen carries no
// schedule, Learning and Learned carry the tick at which the card is
// due again. Transition sites type-switch over the three variants, so a
// scheduled status without a due value cannot be expressed.
type Status interface {
	isStatus()
}

// Unseen marks a card that has never been reviewed.
type Unseen struct{}

// Learning marks a scheduled card below the ladder's top rung.
type Learning struct {
	Due int
}

// Learned marks a scheduled card at the ladder's top rung.
type Learned struct {
	Due int
}

func (Unseen) isStatus()   {}
func (Learning) isStatus() {}
func (Learned) isStatus()  {}

func (Unseen) String() string     { return "unseen" }
func (s Learning) String() string { return fmt.Sprintf("learning (due %d)", s.Due) }
func (s Learned) String() string  { return fmt.Sprintf("learned (due %d)", s.Due) }

// DueOf returns the due tick carried by s, or false for Unseen.
func DueOf(s Status) (int, bool) {
	switch st := s.(type) {
	case Learning:
		return st.Due, true
	case Learned:
		return st.Due, true
	default:
		return 0, false
	}
}

// Card is the unit entity of a practice deck. Factors is immutable; the
// remaining fields change only through a review.
type Card struct {
	Factors    Factors
	Interval   int
	Status     Status
	LastResult *Rating // nil before the first review
	LastSeen   *int64  // unix seconds, nil before the first review
}

// Clone returns a deep copy of the card. Pointer fields are copied by
// value so snapshots never alias live state.
func (c Card) Clone() Card {
	out := c
	if c.LastResult != nil {
		v := *c.LastResult
		out.LastResult = &v
	}
	if c.LastSeen != nil {
		v := *c.LastSeen
		out.LastSeen = &v
	}
	return out
}
