package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Hard
	Expert
)

// VisibleRange returns the inclusive [min,max] count of given cells a
// puzzle of this difficulty should show.
func (d Difficulty) VisibleRange() (min, max int) {
	switch d {
	case Beginner:
		return 36, 40
	case Intermediate:
		return 32, 36
	case Hard:
		return 28, 32
	default:
		return 24, 28 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Hard:
		return "hard"
	default:
		return "expert"
	}
}

// ParseDifficulty maps a label to its tier, defaulting to Intermediate.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "beginner", "easy":
		return Beginner
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Intermediate
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
)
