package domain

import "testing"

func TestBlockIndex(t *testing.T) {
	cases := []struct {
		row, col, want int
	}{
		{0, 0, 0},
		{2, 5, 1},
		{0, 8, 2},
		{4, 4, 4},
		{5, 3, 4},
		{8, 0, 6},
		{8, 8, 8},
	}
	for _, tc := range cases {
		if got := BlockIndex(tc.row, tc.col); got != tc.want {
			t.Errorf("BlockIndex(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestGridFilled(t *testing.T) {
	var g Grid
	if g.Filled() != 0 {
		t.Fatalf("empty grid reports %d filled cells", g.Filled())
	}
	if g.Full() {
		t.Fatal("empty grid reports full")
	}
	g[0][0] = 5
	g[8][8] = 9
	if got := g.Filled(); got != 2 {
		t.Fatalf("Filled() = %d, want 2", got)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = 1
		}
	}
	if !g.Full() {
		t.Fatal("fully written grid reports not full")
	}
}

func TestVisibleRanges(t *testing.T) {
	cases := []struct {
		d        Difficulty
		min, max int
	}{
		{Beginner, 36, 40},
		{Intermediate, 32, 36},
		{Hard, 28, 32},
		{Expert, 24, 28},
	}
	for _, tc := range cases {
		min, max := tc.d.VisibleRange()
		if min != tc.min || max != tc.max {
			t.Errorf("%s range = [%d,%d], want [%d,%d]", tc.d, min, max, tc.min, tc.max)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty("expert") != Expert {
		t.Error("expert did not parse")
	}
	if ParseDifficulty("") != Intermediate {
		t.Error("empty label should default to intermediate")
	}
	if ParseDifficulty("easy") != Beginner {
		t.Error("easy alias should map to beginner")
	}
}
