package domain

import (
	"testing"
)

func TestParseDirection(t *testing.T) {
	for _, d := range AllDirections() {
		parsed, ok := ParseDirection(string(d))
		if !ok {
			t.Errorf("ParseDirection(%q) should succeed", d)
		}
		if parsed != d {
			t.Errorf("ParseDirection(%q) = %q", d, parsed)
		}
	}

	for _, label := range []string{"", "north", "UP", "diagonal", "up "} {
		if _, ok := ParseDirection(label); ok {
			t.Errorf("ParseDirection(%q) should fail", label)
		}
	}
}

func TestNewPresentationOrder_GroupsNeverInterleave(t *testing.T) {
	cardinals := map[Direction]bool{}
	for _, d := range CardinalDirections() {
		cardinals[d] = true
	}
	diagonals := map[Direction]bool{}
	for _, d := range DiagonalDirections() {
		diagonals[d] = true
	}

	// The shuffle is random; check the structural property over many draws.
	for i := 0; i < 200; i++ {
		order := NewPresentationOrder()
		if len(order) != 8 {
			t.Fatalf("order length = %d, want 8", len(order))
		}

		seen := map[Direction]bool{}
		for _, d := range order {
			if seen[d] {
				t.Fatalf("direction %q appears twice in %v", d, order)
			}
			seen[d] = true
		}

		for _, d := range order[:4] {
			if !cardinals[d] {
				t.Fatalf("first half contains non-cardinal %q: %v", d, order)
			}
		}
		for _, d := range order[4:] {
			if !diagonals[d] {
				t.Fatalf("second half contains non-diagonal %q: %v", d, order)
			}
		}
	}
}

func TestNewPresentationOrder_ShufflesWithinGroups(t *testing.T) {
	// With 200 draws the chance of every draw matching the fixed group
	// order is (1/24)^2 per draw, i.e. effectively zero.
	base := CardinalDirections()
	varied := false
	for i := 0; i < 200; i++ {
		order := NewPresentationOrder()
		for j := range base {
			if order[j] != base[j] {
				varied = true
			}
		}
	}
	if !varied {
		t.Error("presentation order never varied across 200 draws")
	}
}
