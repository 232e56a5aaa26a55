// Package board implements the 9×9 grid model shared by the solver and
// generator: cell access with precondition checks, deep copies, equality,
// and the row/column/box placement legality test.
package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
)

// Board represents a 9x9 Sudoku board.
//
// Board is a plain container: Set and Clear validate positions and value
// ranges but never enforce Sudoku legality, so a fully filled board may
// still violate constraints. Legality is a separate question answered by
// CanPlace (single cell) and IsValid (whole board).
type Board struct {
	cells [CellCount]int

	// filled tracks non-empty cells for quick completion checks.
	// Once initialized, filled should only be touched inside SetForce.
	filled int
}

// New creates an empty Board.
func New() *Board {
	return &Board{}
}

// NewFromString creates a Board from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
func NewFromString(s string) (*Board, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("string must be exactly %d characters, got %d", CellCount, len(s))
	}

	b := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			b.SetForce(pos, int(ch-'0'))
		default:
			return nil, fmt.Errorf("invalid character '%c' at position %d", ch, pos)
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
// Mutating the clone never affects the source.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Equals reports whether every corresponding cell of the two boards is equal.
func (b *Board) Equals(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.cells == other.cells
}

// Set places a value 0-9 at the given position, 0 meaning empty.
// Returns an error if the position or value is out of range.
//
// Set does not check Sudoku legality; use CanPlace first when the caller
// needs a legal move.
func (b *Board) Set(pos, val int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	b.SetForce(pos, val)
	return nil
}

// SetForce places a value without precondition checks.
// Use only when certain pos is in [0, 81) and val is in [0, 9].
func (b *Board) SetForce(pos, val int) {
	old := b.cells[pos]
	b.cells[pos] = val
	if old == EmptyCell && val != EmptyCell {
		b.filled++
	} else if old != EmptyCell && val == EmptyCell {
		b.filled--
	}
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (b *Board) Clear(pos int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	b.SetForce(pos, EmptyCell)
	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return b.cells[pos]
}

// Candidates returns a slice of values 1-9 legal at a given position.
// An empty slice indicates an unsolvable board; nil an invalid position.
// The cell itself must be empty; its own value would otherwise conflict.
func (b *Board) Candidates(pos int) []int {
	if !isValidPosition(pos) {
		return nil
	}
	candidates := make([]int, 0, 9)
	for val := 1; val <= 9; val++ {
		if b.canPlace(pos, val) {
			candidates = append(candidates, val)
		}
	}
	return candidates
}

// IsComplete reports whether no cell is empty.
// Completion is independent of legality: a full board may still violate
// Sudoku constraints, so callers pair this with Equals against a known
// solution or with IsValid.
func (b *Board) IsComplete() bool {
	return b.filled == CellCount
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	return CellCount - b.filled
}

// GivenCount returns the number of filled cells on the board.
func (b *Board) GivenCount() int {
	return b.filled
}

// String returns the board as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			val := b.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables for row and column mapping.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// RowCol is the inverse of MakePos.
// Returns (InvalidCell, InvalidCell) for invalid positions.
func RowCol(pos int) (row, col int) {
	if !isValidPosition(pos) {
		return InvalidCell, InvalidCell
	}
	return posToRow[pos], posToCol[pos]
}

// init initializes lookup tables for position-to-row and position-to-column.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
	}
}
