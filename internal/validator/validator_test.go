package validator

import (
	"context"
	"errors"
	"testing"

	"github.com/ucakyunus/sudoku/internal/domain"
)

func TestPlacementOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := uint8(1); v <= 9; v++ {
				if !IsValidPlacement(&g, r, c, v) {
					t.Fatalf("empty grid rejected %d at (%d,%d)", v, r, c)
				}
			}
		}
	}
}

func TestPlacementAfterOneDigit(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5

	cases := []struct {
		row, col int
		v        uint8
		want     bool
	}{
		{0, 1, 5, false}, // same row
		{1, 0, 5, false}, // same column
		{1, 1, 5, false}, // same block
		{3, 3, 5, true},  // clear of all three
		{0, 1, 1, true},  // different digit
	}
	for _, tc := range cases {
		if got := IsValidPlacement(&g, tc.row, tc.col, tc.v); got != tc.want {
			t.Errorf("IsValidPlacement(%d,%d,%d) = %v, want %v", tc.row, tc.col, tc.v, got, tc.want)
		}
	}
}

func TestPlacementIgnoresTargetCell(t *testing.T) {
	var g domain.Grid
	g[4][4] = 7
	// Re-placing the same digit over its own cell is legal; the check
	// compares only against other cells.
	if !IsValidPlacement(&g, 4, 4, 7) {
		t.Fatal("placement check counted the target cell against itself")
	}
}

func TestCheckPlacementBounds(t *testing.T) {
	var g domain.Grid
	bad := []struct {
		row, col int
		v        uint8
	}{
		{-1, 0, 5},
		{9, 0, 5},
		{0, -1, 5},
		{0, 9, 5},
		{0, 0, 0},
		{0, 0, 10},
	}
	for _, tc := range bad {
		if _, err := CheckPlacement(&g, tc.row, tc.col, tc.v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CheckPlacement(%d,%d,%d) err = %v, want ErrOutOfRange", tc.row, tc.col, tc.v, err)
		}
	}
	ok, err := CheckPlacement(&g, 0, 0, 5)
	if err != nil || !ok {
		t.Fatalf("in-range placement failed: ok=%v err=%v", ok, err)
	}
}

func TestValidateFindsConflicts(t *testing.T) {
	ctx := context.Background()
	var g domain.Grid
	ok, conf, err := New().Validate(ctx, &g)
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("empty grid: ok=%v conf=%v err=%v", ok, conf, err)
	}

	g[0][0] = 5
	g[0][7] = 5 // row duplicate
	ok, conf, err = New().Validate(ctx, &g)
	if err != nil {
		t.Fatal(err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("row duplicate not reported: ok=%v conf=%v", ok, conf)
	}

	g[0][7] = 0
	g[2][1] = 5 // block duplicate with (0,0)
	ok, conf, _ = New().Validate(ctx, &g)
	if ok || len(conf) == 0 {
		t.Fatalf("block duplicate not reported: ok=%v conf=%v", ok, conf)
	}
}
