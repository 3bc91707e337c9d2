package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/validator"
)

// MaxMistakes ends the game when reached.
const MaxMistakes = 3

var (
	ErrInitialCell = errors.New("game: cell is part of the original puzzle")
	ErrGameOver    = errors.New("game: session is already finished")
	ErrNoEmptyCell = errors.New("game: no cell left to reveal")
)

// Status tracks a session's lifecycle.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Move is one player action: a committed digit, a pencil mark, or a
// clear (Value 0).
type Move struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
	Draft bool  `json:"draft"`
}

// MoveResult reports the outcome of a move back to the client.
type MoveResult struct {
	Cell      domain.Cell        `json:"cell"`
	Correct   bool               `json:"correct"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Score     int                `json:"score"`
	Mistakes  int                `json:"mistakes"`
	Status    string             `json:"status"`
}

// Event is pushed to websocket subscribers after state changes.
type Event struct {
	Kind     string      `json:"kind"` // "move", "hint", "won", "lost"
	Cell     domain.Cell `json:"cell"`
	Score    int         `json:"score"`
	Mistakes int         `json:"mistakes"`
	Status   string      `json:"status"`
}

// Session owns the surface-facing cell records and all score/timer
// bookkeeping. The engine only ever sees raw grids derived from it.
type Session struct {
	ID         string
	Difficulty domain.Difficulty

	mu        sync.Mutex
	solution  domain.Grid
	cells     [9][9]domain.Cell
	score     int
	mistakes  int
	hintsUsed int
	startedAt time.Time
	status    Status
	subs      []chan Event
}

// NewSession builds a fresh session from a carved puzzle and the solution
// it was carved from. Given cells are immutable for the player.
func NewSession(puzzle, solution domain.Grid, d domain.Difficulty) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Difficulty: d,
		solution:   solution,
		startedAt:  time.Now(),
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s.cells[r][c] = domain.Cell{
				Value:   puzzle[r][c],
				Initial: puzzle[r][c] != 0,
				Row:     r,
				Col:     c,
				Block:   domain.BlockIndex(r, c),
			}
		}
	}
	return s
}

func basePoints(d domain.Difficulty) int {
	switch d {
	case domain.Beginner:
		return 50
	case domain.Intermediate:
		return 75
	case domain.Hard:
		return 100
	default:
		return 150 // Expert
	}
}

// committedGrid projects the non-draft cell values onto a raw grid for
// the engine. Draft marks are invisible to constraint checks.
func (s *Session) committedGrid() domain.Grid {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !s.cells[r][c].Draft {
				g[r][c] = s.cells[r][c].Value
			}
		}
	}
	return g
}

// Apply plays one move. Draft moves toggle pencil marks without scoring;
// committed moves are checked against the row/col/block constraints and
// the known solution. Wrong commits cost points and a mistake, and the
// third mistake loses the game.
func (s *Session) Apply(m Move) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Playing {
		return MoveResult{}, ErrGameOver
	}
	if m.Row < 0 || m.Row > 8 || m.Col < 0 || m.Col > 8 || m.Value > 9 {
		return MoveResult{}, validator.ErrOutOfRange
	}
	cell := &s.cells[m.Row][m.Col]
	if cell.Initial {
		return MoveResult{}, ErrInitialCell
	}

	if m.Value == 0 {
		cell.Value, cell.Draft, cell.Error = 0, false, false
		return s.result(*cell, false, nil), nil
	}
	if m.Draft {
		cell.Value, cell.Draft, cell.Error = m.Value, true, false
		return s.result(*cell, false, nil), nil
	}

	// Constraint check runs against the other committed cells; the
	// target cell's prior content is irrelevant to the placement.
	grid := s.committedGrid()
	grid[m.Row][m.Col] = 0
	legal := validator.IsValidPlacement(&grid, m.Row, m.Col, m.Value)
	correct := m.Value == s.solution[m.Row][m.Col]

	cell.Value, cell.Draft = m.Value, false
	cell.Error = !correct || !legal
	var conflicts []domain.CellCoord
	if cell.Error {
		s.mistakes++
		s.score -= basePoints(s.Difficulty) / 2
		if s.score < 0 {
			s.score = 0
		}
		if !legal {
			grid[m.Row][m.Col] = m.Value
			_, conflicts, _ = validator.New().Validate(context.Background(), &grid)
		}
		if s.mistakes >= MaxMistakes {
			s.status = Lost
			s.publish(Event{Kind: "lost", Cell: *cell, Score: s.score, Mistakes: s.mistakes, Status: s.status.String()})
			return s.result(*cell, correct, conflicts), nil
		}
	} else {
		s.score += basePoints(s.Difficulty)
		if s.completed() {
			s.status = Won
			s.score += s.completionBonus()
			s.publish(Event{Kind: "won", Cell: *cell, Score: s.score, Mistakes: s.mistakes, Status: s.status.String()})
			return s.result(*cell, correct, nil), nil
		}
	}
	s.publish(Event{Kind: "move", Cell: *cell, Score: s.score, Mistakes: s.mistakes, Status: s.status.String()})
	return s.result(*cell, correct, conflicts), nil
}

// Hint reveals the solution digit at (row, col), or at the first empty or
// wrong cell when row is negative. Revealed cells become immutable and
// the hint costs a full correct-move's points.
func (s *Session) Hint(row, col int) (domain.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Playing {
		return domain.Cell{}, ErrGameOver
	}
	if row < 0 {
		found := false
		for r := 0; r < 9 && !found; r++ {
			for c := 0; c < 9 && !found; c++ {
				cell := &s.cells[r][c]
				if !cell.Initial && cell.Value != s.solution[r][c] {
					row, col, found = r, c, true
				}
			}
		}
		if !found {
			return domain.Cell{}, ErrNoEmptyCell
		}
	} else if row > 8 || col < 0 || col > 8 {
		return domain.Cell{}, validator.ErrOutOfRange
	}
	cell := &s.cells[row][col]
	if cell.Initial {
		return domain.Cell{}, ErrInitialCell
	}
	cell.Value = s.solution[row][col]
	cell.Initial = true
	cell.Draft, cell.Error = false, false
	s.hintsUsed++
	s.score -= basePoints(s.Difficulty)
	if s.score < 0 {
		s.score = 0
	}
	if s.completed() {
		s.status = Won
		s.score += s.completionBonus()
		s.publish(Event{Kind: "won", Cell: *cell, Score: s.score, Mistakes: s.mistakes, Status: s.status.String()})
	} else {
		s.publish(Event{Kind: "hint", Cell: *cell, Score: s.score, Mistakes: s.mistakes, Status: s.status.String()})
	}
	return *cell, nil
}

func (s *Session) completed() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := s.cells[r][c]
			if cell.Draft || cell.Value != s.solution[r][c] {
				return false
			}
		}
	}
	return true
}

// completionBonus rewards fast finishes; it decays to a floor rather
// than zero so every win is worth something.
func (s *Session) completionBonus() int {
	base := basePoints(s.Difficulty) * 10
	elapsed := int(time.Since(s.startedAt) / time.Second)
	bonus := base - elapsed
	if min := base / 10; bonus < min {
		bonus = min
	}
	return bonus
}

func (s *Session) result(c domain.Cell, correct bool, conflicts []domain.CellCoord) MoveResult {
	return MoveResult{
		Cell:      c,
		Correct:   correct,
		Conflicts: conflicts,
		Score:     s.score,
		Mistakes:  s.mistakes,
		Status:    s.status.String(),
	}
}

// Snapshot returns the state a client needs to render the board.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:         s.ID,
		Difficulty: s.Difficulty.String(),
		Cells:      s.cells,
		Score:      s.score,
		Mistakes:   s.mistakes,
		HintsUsed:  s.hintsUsed,
		Elapsed:    int(time.Since(s.startedAt) / time.Second),
		Status:     s.status.String(),
	}
}

// State is the JSON projection of a session.
type State struct {
	ID         string            `json:"id"`
	Difficulty string            `json:"difficulty"`
	Cells      [9][9]domain.Cell `json:"cells"`
	Score      int               `json:"score"`
	Mistakes   int               `json:"mistakes"`
	HintsUsed  int               `json:"hintsUsed"`
	Elapsed    int               `json:"elapsedSeconds"`
	Status     string            `json:"status"`
}

// ScoreEntry converts a finished session into a leaderboard row.
func (s *Session) ScoreEntry(player string) *domain.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.ScoreEntry{
		ID:         uuid.NewString(),
		Player:     player,
		Difficulty: s.Difficulty,
		Score:      s.score,
		Elapsed:    int(time.Since(s.startedAt) / time.Second),
		Mistakes:   s.mistakes,
		CreatedAt:  time.Now().UTC(),
	}
}

// Subscribe registers an event channel; slow consumers miss events
// rather than blocking moves.
func (s *Session) Subscribe() chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Event, 16)
	s.subs = append(s.subs, ch)
	return ch
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (s *Session) Unsubscribe(ch chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(ch)
			return
		}
	}
}

func (s *Session) publish(e Event) {
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
