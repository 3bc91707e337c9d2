package usecase

import (
	"context"
	"errors"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/game"
	"github.com/ucakyunus/sudoku/internal/ports"
)

// LeaderboardSize caps how many entries each difficulty keeps.
const LeaderboardSize = 3

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Scores    ports.ScoreStore
	Sessions  *game.Registry
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, sc ports.ScoreStore, reg *game.Registry) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Scores: sc, Sessions: reg}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewGame generates a puzzle at the given difficulty and opens a session
// around it. The solution stays server-side.
func (u *Service) NewGame(ctx context.Context, seed int64, d domain.Difficulty) (*game.Session, ports.Stats, error) {
	if u.Generator == nil || u.Sessions == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, solution, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		return nil, st, err
	}
	s := game.NewSession(p.Givens, solution, d)
	u.Sessions.Add(s)
	return s, st, nil
}

// Move applies a player move to a live session.
func (u *Service) Move(ctx context.Context, id string, m game.Move) (game.MoveResult, error) {
	if u.Sessions == nil {
		return game.MoveResult{}, errNotConfigured
	}
	s, err := u.Sessions.Get(id)
	if err != nil {
		return game.MoveResult{}, err
	}
	return s.Apply(m)
}

// RevealCell answers a session hint from the stored solution.
func (u *Service) RevealCell(ctx context.Context, id string, row, col int) (domain.Cell, error) {
	if u.Sessions == nil {
		return domain.Cell{}, errNotConfigured
	}
	s, err := u.Sessions.Get(id)
	if err != nil {
		return domain.Cell{}, err
	}
	return s.Hint(row, col)
}

// Session returns a snapshot of a live session.
func (u *Service) Session(ctx context.Context, id string) (game.State, error) {
	if u.Sessions == nil {
		return game.State{}, errNotConfigured
	}
	s, err := u.Sessions.Get(id)
	if err != nil {
		return game.State{}, err
	}
	return s.Snapshot(), nil
}

// SubmitScore persists a finished session on the leaderboard and drops
// the session.
func (u *Service) SubmitScore(ctx context.Context, id, player string) (*domain.ScoreEntry, error) {
	if u.Sessions == nil || u.Scores == nil {
		return nil, errNotConfigured
	}
	s, err := u.Sessions.Get(id)
	if err != nil {
		return nil, err
	}
	e := s.ScoreEntry(player)
	if err := u.Scores.Submit(ctx, e); err != nil {
		return nil, err
	}
	u.Sessions.Remove(id)
	return e, nil
}

// TopScores lists the leaderboard for one difficulty.
func (u *Service) TopScores(ctx context.Context, d domain.Difficulty) ([]domain.ScoreEntry, error) {
	if u.Scores == nil {
		return nil, errNotConfigured
	}
	return u.Scores.Top(ctx, d, LeaderboardSize)
}

// Engine passthroughs for stateless API calls.

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, domain.Grid, ports.Stats, error) {
	if u.Generator == nil {
		return nil, domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}
