package models

import (
	"errors"
	"testing"
)

func TestFactors(t *testing.T) {
	f := Factors{X: 7, Y: 8}
	if got := f.Product(); got != 56 {
		t.Errorf("Product() = %d, want 56", got)
	}
	if got := f.String(); got != "7 x 8" {
		t.Errorf("String() = %q, want %q", got, "7 x 8")
	}
}

func TestRatingText(t *testing.T) {
	for _, r := range []Rating{Good, Bad} {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", r, err)
		}
		var back Rating
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != r {
			t.Errorf("round trip of %v yielded %v", r, back)
		}
	}

	if _, err := Rating(0).MarshalText(); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("MarshalText(0) err = %v, want ErrInvalidRating", err)
	}
	var r Rating
	if err := r.UnmarshalText([]byte("meh")); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("UnmarshalText(meh) err = %v, want ErrInvalidRating", err)
	}
}

func TestDueOf(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantDue int
		wantOK  bool
	}{
		{"unseen has no due", Unseen{}, 0, false},
		{"learning carries due", Learning{Due: 7}, 7, true},
		{"learned carries due", Learned{Due: 12}, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, ok := DueOf(tt.status)
			if due != tt.wantDue || ok != tt.wantOK {
				t.Errorf("DueOf(%v) = (%d, %v), want (%d, %v)", tt.status, due, ok, tt.wantDue, tt.wantOK)
			}
		})
	}
}

func TestCardCloneIsDeep(t *testing.T) {
	result := Good
	seen := int64(1700000000)
	card := Card{
		Factors:    Factors{X: 3, Y: 4},
		Interval:   5,
		Status:     Learning{Due: 2},
		LastResult: &result,
		LastSeen:   &seen,
	}

	clone := card.Clone()
	*clone.LastResult = Bad
	*clone.LastSeen = 0

	if *card.LastResult != Good {
		t.Error("mutating the clone's last result changed the original")
	}
	if *card.LastSeen != 1700000000 {
		t.Error("mutating the clone's last seen changed the original")
	}
}
