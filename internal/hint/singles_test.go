package hint

import (
	"context"
	"testing"

	"github.com/ucakyunus/sudoku/internal/domain"
)

func TestSinglesFindsForcedCell(t *testing.T) {
	// Row 0 misses only the 9 at (0,8).
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	h, ok, err := NewSingles().Hint(context.Background(), &g, domain.StrategySingles)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no hint found for a forced cell")
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 0, Col: 8}) || h.Value != 9 {
		t.Fatalf("hint = %+v, want 9 at (0,8)", h)
	}
}

func TestSinglesRespectsTierCap(t *testing.T) {
	var g domain.Grid
	_, ok, err := NewSingles().Hint(context.Background(), &g, domain.StrategyTier(-1))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("hint produced below the singles tier")
	}
}

func TestSinglesSilentOnOpenBoard(t *testing.T) {
	var g domain.Grid // every cell has nine candidates
	_, ok, err := NewSingles().Hint(context.Background(), &g, domain.StrategyAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("found a naked single on an empty board")
	}
}
