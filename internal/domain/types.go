package domain

import "time"

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is the surface-facing per-cell record owned by the game-state
// layer. The engine never sees it; it works on raw Grids only.
type Cell struct {
	Value   uint8 `json:"value"`
	Initial bool  `json:"isInitial"`
	Error   bool  `json:"isError"`
	Draft   bool  `json:"isDraft"`
	Row     int   `json:"row"`
	Col     int   `json:"col"`
	Block   int   `json:"block"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Value    uint8        `json:"value,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle bundles a carved grid with its generation metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Givens     Grid       `json:"givens"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	ID         string     `json:"id,omitempty"`
	Player     string     `json:"player"`
	Difficulty Difficulty `json:"difficulty"`
	Score      int        `json:"score"`
	Elapsed    int        `json:"elapsedSeconds"`
	Mistakes   int        `json:"mistakes"`
	CreatedAt  time.Time  `json:"createdAt"`
}
