package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution, using a Solver
// for the uniqueness checks while carving.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver for
// uniqueness checks.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Carve removes cells from a complete solution until the puzzle shows a
// visible-cell count drawn uniformly from the difficulty's range, keeping
// each removal only if exactly one solution remains. When the shuffled
// coordinate list runs out first, the puzzle keeps more givens than the
// range asked for; that best-effort result is returned as-is, not as an
// error.
func (g *UniqueGenerator) Carve(ctx context.Context, solution domain.Grid, d domain.Difficulty, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	min, max := d.VisibleRange()
	target := min + rng.Intn(max-min+1)
	toRemove := 81 - target

	puz := solution
	nodes := 0
	removed := 0
	for _, pos := range rng.Perm(81) {
		if removed == toRemove {
			break
		}
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		n, st, err := g.Solver.Count(ctx, &puz, 2)
		nodes += st.Nodes
		if err != nil {
			return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			puz[r][c] = old
			continue
		}
		removed++
	}
	return puz, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Generate fills a fresh solution and carves a puzzle at the given
// difficulty, all driven by a rand source seeded with seed.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, domain.Grid, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solution, err := FillSolution(ctx, rng)
	if err != nil {
		return nil, domain.Grid{}, ports.Stats{Duration: time.Since(start)}, err
	}
	puz, st, err := g.Carve(ctx, solution, diff, rng)
	if err != nil {
		return nil, domain.Grid{}, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, err
	}
	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, solution, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}
