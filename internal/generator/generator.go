// Package generator produces Sudoku puzzles: a randomly filled full grid is
// carved down to a difficulty-dependent number of givens while a solver
// uniqueness check guarantees exactly one completion at every step.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/aliarasea/sudoku/internal/board"
	"github.com/aliarasea/sudoku/internal/solver"
)

var ErrGenerationFailed = errors.New("failed to generate valid puzzle")

// Puzzle bundles a carved board with its solution.
// A Puzzle is immutable after creation; player edits belong on a separate
// working copy owned by the caller.
type Puzzle struct {
	// Givens is the carved board handed to the player.
	Givens *board.Board

	// Solution is the unique completion of Givens.
	Solution *board.Board

	Difficulty Difficulty

	// GivenCount is the actual number of clues in Givens. When the attempt
	// budget runs out before the carving target is reached it exceeds the
	// profile's MaxGivens; callers observe the degradation here instead of
	// getting an error.
	GivenCount int
}

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(Medium)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// The carved board always has exactly one completion, and that completion
// is the returned Solution.
func (g *Generator) Generate() (*Puzzle, error) {
	solution, err := g.generateSolution()
	if err != nil {
		return nil, err
	}

	puzzle := g.carve(solution)

	return &Puzzle{
		Givens:     puzzle,
		Solution:   solution,
		Difficulty: g.options.Difficulty,
		GivenCount: puzzle.GivenCount(),
	}, nil
}

// generateSolution creates a complete valid Sudoku board.
func (g *Generator) generateSolution() (*board.Board, error) {
	s := solver.New(board.New(), &solver.Options{
		Randomize: true,
		Seed:      g.rng.Int63(),
	})

	full, err := s.Fill()
	if err != nil {
		// An empty board always fills; any failure is a bug upstream.
		return nil, ErrGenerationFailed
	}
	return full, nil
}

// carve removes clues from a complete board while preserving uniqueness.
//
// Removals walk a shuffled order over all 81 positions. Each removal is
// checked with a two-solution count on a solver-owned copy and reverted if
// the board no longer has exactly one completion. Rejected removals still
// consume attempt budget, so on hard profiles the result may keep more
// givens than the nominal target.
func (g *Generator) carve(solution *board.Board) *board.Board {
	profile := ProfileFor(g.options.Difficulty)
	puzzle := solution.Clone()

	span := profile.MaxGivens - profile.MinGivens
	target := profile.MinGivens + g.rng.Intn(span+1)

	positions := g.rng.Perm(board.CellCount)
	budget := profile.AttemptBudget()
	attempts := 0

	deadline := time.Now().Add(g.options.Timeout)

	for _, pos := range positions {
		if puzzle.GivenCount() <= target || attempts >= budget {
			break
		}
		if g.options.Timeout > 0 && time.Now().After(deadline) {
			break
		}

		val := puzzle.Get(pos)
		if val == board.EmptyCell {
			continue
		}

		puzzle.SetForce(pos, board.EmptyCell)
		if solver.CountUpToTwo(puzzle) != 1 {
			// Removal breaks uniqueness, put the clue back.
			puzzle.SetForce(pos, val)
		}
		attempts++
	}

	return puzzle
}

// GenerateWithDifficulty is a convenience function to generate a puzzle at
// a given difficulty with a time-based seed.
func GenerateWithDifficulty(d Difficulty) (*Puzzle, error) {
	return New(DefaultOptions(d)).Generate()
}
