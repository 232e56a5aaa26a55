// Package solver implements recursive backtracking search over a board:
// first-solution solving, solution counting for uniqueness checks, and
// randomized full-grid filling.
package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/aliarasea/sudoku/internal/board"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// Solver implements algorithms for solving Sudoku puzzles.
//
// Each Solver owns a scratch clone of the input board; the caller's board
// is never touched. Every failing branch resets its cell to empty, so the
// scratch board returns to its pre-call state along any abandoned path.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
}

// New creates a solver for the given board.
// The board is cloned; the caller's copy is not mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		Board:   b.Clone(),
		options: options,
	}

	if options.Randomize {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	return s
}

// Solve attempts to find one solution.
// Returns the solved board or ErrNoSolution if the search space is
// exhausted without a full assignment.
func (s *Solver) Solve() (*board.Board, error) {
	if !s.Board.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	if !s.backtrack() {
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// Solve finds one solution for b and writes it back into b on success.
// On failure b is left untouched and ErrNoSolution is returned.
func Solve(b *board.Board, options *Options) error {
	s := New(b, options)
	solved, err := s.Solve()
	if err != nil {
		return err
	}
	*b = *solved
	return nil
}

// CountUpToTwo counts solutions, stopping as soon as a second one is found.
// Returns 0 (unsolvable), 1 (unique solution), or 2 (multiple solutions —
// possibly more, the search aborts at two).
//
// Unlike Solve, reaching a full assignment does not stop the search: the
// search unwinds to the nearest choice point and keeps looking for a second
// distinct solution. Only a second hit aborts the whole search. This bounds
// a uniqueness check to roughly the cost of finding two solutions rather
// than enumerating all of them.
func (s *Solver) CountUpToTwo() int {
	if !s.Board.IsValid() {
		return 0
	}

	count := 0
	s.countBacktrack(&count)
	return count
}

// CountUpToTwo counts the solutions of b, stopping at two.
// b is not mutated.
func CountUpToTwo(b *board.Board) int {
	return New(b, nil).CountUpToTwo()
}

// backtrack implements recursive backtracking with MRV heuristic.
// MRV = Minimum Remaining Values, guess on the most constrained cells first
// to reduce total search space.
func (s *Solver) backtrack() bool {
	if s.Board.EmptyCount() == 0 {
		return true
	}

	pos, candidates := s.FindMRVCell()
	if len(candidates) == 0 {
		return false
	}

	s.shuffle(candidates)

	for _, val := range candidates {
		s.Board.SetForce(pos, val)
		if s.backtrack() {
			return true
		}
		s.Board.SetForce(pos, board.EmptyCell)
	}

	return false
}

// countBacktrack is the counting variant of backtrack.
// It increments *count on every full assignment and aborts the entire
// search once *count reaches two.
func (s *Solver) countBacktrack(count *int) {
	if s.Board.EmptyCount() == 0 {
		*count++
		return
	}

	pos, candidates := s.FindMRVCell()
	for _, val := range candidates {
		s.Board.SetForce(pos, val)
		s.countBacktrack(count)
		s.Board.SetForce(pos, board.EmptyCell)

		if *count >= 2 {
			return
		}
	}
}

// FindMRVCell finds the empty cell with fewest candidates.
// Cells are scanned in row-major order; ties are broken by scan order, and
// the scan stops early at a cell with at most one candidate since it
// cannot be beaten.
func (s *Solver) FindMRVCell() (int, []int) {
	mrvPos := -1
	mrvCount := 10
	var mrvCandidates []int

	for pos := 0; pos < board.CellCount; pos++ {
		if s.Board.Get(pos) != board.EmptyCell {
			continue
		}

		candidates := s.Board.Candidates(pos)
		if len(candidates) < mrvCount {
			mrvCount = len(candidates)
			mrvPos = pos
			mrvCandidates = candidates

			if mrvCount <= 1 {
				break
			}
		}
	}

	return mrvPos, mrvCandidates
}

// Fill completes the board's empty cells into a full legal grid and
// returns it. Cells are filled in strict row-major order, trying the legal
// candidates of each cell in freshly shuffled order and undoing on dead
// ends. Randomized candidate order is the only source of variety between
// runs; it is a heuristic sampler, not a uniform distribution over all
// legal grids.
func (s *Solver) Fill() (*board.Board, error) {
	if !s.Board.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	if !s.fill() {
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// fill is the row-major backtracking step behind Fill.
func (s *Solver) fill() bool {
	pos := s.firstEmpty()
	if pos == -1 {
		return true
	}

	candidates := s.Board.Candidates(pos)
	s.shuffle(candidates)

	for _, val := range candidates {
		s.Board.SetForce(pos, val)
		if s.fill() {
			return true
		}
		s.Board.SetForce(pos, board.EmptyCell)
	}

	return false
}

// firstEmpty returns the first empty position in row-major order, or -1.
func (s *Solver) firstEmpty() int {
	for pos := 0; pos < board.CellCount; pos++ {
		if s.Board.Get(pos) == board.EmptyCell {
			return pos
		}
	}
	return -1
}

// shuffle randomizes candidate order when the solver is randomized.
func (s *Solver) shuffle(candidates []int) {
	if s.rng == nil {
		return
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
}
