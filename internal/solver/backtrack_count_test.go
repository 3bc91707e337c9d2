package solver

import (
	"context"
	"testing"
)

func TestCountUniquePuzzle(t *testing.T) {
	s := NewBacktrackingSolver()
	in := sample
	n, st, err := s.Count(context.Background(), &in, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("Count = %d, want 1 (nodes=%d)", n, st.Nodes)
	}
	ok, _, err := s.Unique(context.Background(), &in)
	if err != nil || !ok {
		t.Fatalf("Unique = %v, err = %v", ok, err)
	}
}

func TestCountStopsAtCutoff(t *testing.T) {
	s := NewBacktrackingSolver()

	// Stripping a single row leaves a forced completion (each column
	// determines its missing digit), so strip several rows to open up
	// multiple solutions: rows 0 and 1 alone can already swap wholesale.
	g := pattern
	for c := 0; c < 9; c++ {
		g[0][c] = 0
		g[1][c] = 0
		g[3][c] = 0
	}
	n, _, err := s.Count(context.Background(), &g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Count with cutoff 2 = %d, want exactly the cutoff", n)
	}

	n, _, err = s.Count(context.Background(), &g, 5)
	if err != nil {
		t.Fatal(err)
	}
	if n < 2 || n > 5 {
		t.Fatalf("Count with cutoff 5 = %d, want in [2,5]", n)
	}
}

func TestCountZeroForConflict(t *testing.T) {
	s := NewBacktrackingSolver()
	g := pattern
	g[0] = [9]uint8{5, 5, 0, 0, 0, 0, 0, 0, 0}
	n, _, err := s.Count(context.Background(), &g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("Count = %d, want 0", n)
	}
}

func TestCountLeavesInputUntouched(t *testing.T) {
	s := NewBacktrackingSolver()
	in := sample
	if _, _, err := s.Count(context.Background(), &in, 2); err != nil {
		t.Fatal(err)
	}
	if in != sample {
		t.Fatal("Count mutated the caller's grid")
	}
}
