package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects a carving profile.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// String returns the lowercase name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Profile bounds the carving procedure for one difficulty level.
type Profile struct {
	// MinGivens and MaxGivens bound the carving target; the actual given
	// count is drawn uniformly from [MinGivens, MaxGivens].
	MinGivens int
	MaxGivens int

	// AttemptFactor scales the removal-attempt budget: the carver stops
	// after AttemptFactor × 81 attempts, counting rejected removals.
	AttemptFactor int
}

// AttemptBudget returns the total removal attempts allowed by the profile.
func (p Profile) AttemptBudget() int {
	return p.AttemptFactor * 81
}

// profiles maps each difficulty to its carving bounds. Harder levels have
// lower given-count ranges and larger attempt budgets: preserving
// uniqueness with fewer clues needs more failed-removal exploration.
var profiles = [...]Profile{
	Easy:   {MinGivens: 36, MaxGivens: 45, AttemptFactor: 2},
	Medium: {MinGivens: 30, MaxGivens: 35, AttemptFactor: 3},
	Hard:   {MinGivens: 25, MaxGivens: 29, AttemptFactor: 5},
	Expert: {MinGivens: 22, MaxGivens: 24, AttemptFactor: 8},
}

// ProfileFor returns the carving profile for a difficulty.
// Unknown difficulties fall back to Medium.
func ProfileFor(d Difficulty) Profile {
	if d < Easy || d > Expert {
		return profiles[Medium]
	}
	return profiles[d]
}
