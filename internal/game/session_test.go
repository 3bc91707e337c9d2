package game

import (
	"errors"
	"testing"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/validator"
)

// solution is a complete valid grid built from shifted rows.
var solution = domain.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 3, 4, 5, 6, 7, 8, 9, 1},
	{5, 6, 7, 8, 9, 1, 2, 3, 4},
	{8, 9, 1, 2, 3, 4, 5, 6, 7},
	{3, 4, 5, 6, 7, 8, 9, 1, 2},
	{6, 7, 8, 9, 1, 2, 3, 4, 5},
	{9, 1, 2, 3, 4, 5, 6, 7, 8},
}

// newTestSession blanks the given cells out of the solution.
func newTestSession(blanks ...domain.CellCoord) *Session {
	puzzle := solution
	for _, b := range blanks {
		puzzle[b.Row][b.Col] = 0
	}
	return NewSession(puzzle, solution, domain.Intermediate)
}

func TestSessionCellsCarryGeometry(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 0})
	st := s.Snapshot()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := st.Cells[r][c]
			if cell.Row != r || cell.Col != c || cell.Block != domain.BlockIndex(r, c) {
				t.Fatalf("cell (%d,%d) carries wrong geometry: %+v", r, c, cell)
			}
			if (r == 0 && c == 0) == cell.Initial {
				t.Fatalf("initial flag wrong at (%d,%d)", r, c)
			}
		}
	}
}

func TestInitialCellsAreImmutable(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 0})
	_, err := s.Apply(Move{Row: 5, Col: 5, Value: 1})
	if !errors.Is(err, ErrInitialCell) {
		t.Fatalf("err = %v, want ErrInitialCell", err)
	}
}

func TestMoveBounds(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 0})
	for _, m := range []Move{
		{Row: -1, Col: 0, Value: 1},
		{Row: 0, Col: 9, Value: 1},
		{Row: 0, Col: 0, Value: 10},
	} {
		if _, err := s.Apply(m); !errors.Is(err, validator.ErrOutOfRange) {
			t.Fatalf("Apply(%+v) err = %v, want ErrOutOfRange", m, err)
		}
	}
}

func TestDraftMovesDoNotScore(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 0})
	res, err := s.Apply(Move{Row: 0, Col: 0, Value: 9, Draft: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Cell.Draft || res.Cell.Error {
		t.Fatalf("draft cell flags wrong: %+v", res.Cell)
	}
	if res.Score != 0 || res.Mistakes != 0 {
		t.Fatalf("draft move changed score/mistakes: %+v", res)
	}
}

func TestCorrectMoveScores(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 4, Col: 4})
	res, err := s.Apply(Move{Row: 4, Col: 4, Value: solution[4][4]})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct || res.Cell.Error {
		t.Fatalf("correct move misreported: %+v", res)
	}
	if res.Score <= 0 {
		t.Fatalf("correct move did not score: %d", res.Score)
	}
	if res.Status != "won" {
		// single blank filled correctly completes the game
		t.Fatalf("status = %q, want won", res.Status)
	}
}

func TestWrongMoveCountsMistake(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 0, Col: 0},
		domain.CellCoord{Row: 8, Col: 8},
	)
	wrong := solution[0][0]%9 + 1 // any digit that is not the answer
	res, err := s.Apply(Move{Row: 0, Col: 0, Value: wrong})
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct || !res.Cell.Error {
		t.Fatalf("wrong move misreported: %+v", res)
	}
	if res.Mistakes != 1 {
		t.Fatalf("mistakes = %d, want 1", res.Mistakes)
	}
}

func TestThreeMistakesLoseTheGame(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 0, Col: 0},
		domain.CellCoord{Row: 8, Col: 8},
	)
	wrong := solution[0][0]%9 + 1
	var res MoveResult
	var err error
	for i := 0; i < MaxMistakes; i++ {
		res, err = s.Apply(Move{Row: 0, Col: 0, Value: wrong})
		if err != nil {
			t.Fatal(err)
		}
	}
	if res.Status != "lost" {
		t.Fatalf("status = %q, want lost after %d mistakes", res.Status, MaxMistakes)
	}
	if _, err := s.Apply(Move{Row: 8, Col: 8, Value: 1}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err = %v, want ErrGameOver", err)
	}
}

func TestClearResetsCell(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 0, Col: 0},
		domain.CellCoord{Row: 8, Col: 8},
	)
	wrong := solution[0][0]%9 + 1
	if _, err := s.Apply(Move{Row: 0, Col: 0, Value: wrong}); err != nil {
		t.Fatal(err)
	}
	res, err := s.Apply(Move{Row: 0, Col: 0, Value: 0})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cell.Value != 0 || res.Cell.Error || res.Cell.Draft {
		t.Fatalf("cleared cell flags wrong: %+v", res.Cell)
	}
}

func TestHintRevealsSolution(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 2, Col: 3},
		domain.CellCoord{Row: 8, Col: 8},
	)
	cell, err := s.Hint(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Value != solution[2][3] || !cell.Initial {
		t.Fatalf("hint cell wrong: %+v", cell)
	}
	// revealed cells become immutable
	if _, err := s.Apply(Move{Row: 2, Col: 3, Value: 1}); !errors.Is(err, ErrInitialCell) {
		t.Fatalf("err = %v, want ErrInitialCell", err)
	}
	// default target picks the remaining blank
	cell, err = s.Hint(-1, -1)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Row != 8 || cell.Col != 8 || cell.Value != solution[8][8] {
		t.Fatalf("default hint picked %+v", cell)
	}
}

func TestEventsReachSubscribers(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 0, Col: 0},
		domain.CellCoord{Row: 8, Col: 8},
	)
	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	if _, err := s.Apply(Move{Row: 0, Col: 0, Value: solution[0][0]}); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-ch:
		if ev.Kind != "move" || ev.Cell.Row != 0 || ev.Cell.Col != 0 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("no event published for a move")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	s := newTestSession(domain.CellCoord{Row: 0, Col: 0})
	r.Add(s)
	got, err := r.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := r.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	r.Remove(s.ID)
	if r.Len() != 0 {
		t.Fatalf("Len = %d after Remove", r.Len())
	}
}
