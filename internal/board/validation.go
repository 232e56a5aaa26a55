package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value must be between 1-9")
)

// CanPlace reports whether placing value at pos would conflict with the
// same row, column, or containing 3×3 box.
// Returns an error for out-of-range positions or values.
//
// The check does not exempt the target cell itself: if the cell already
// holds value, the cell's own value counts as a conflict. Callers testing
// a re-placement must Clear the cell first.
func (b *Board) CanPlace(pos, value int) (bool, error) {
	if err := b.validatePosition(pos); err != nil {
		return false, err
	}
	if value < 1 || value > 9 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}
	return b.canPlace(pos, value), nil
}

// canPlace is the unchecked hot path behind CanPlace and Candidates.
// It scans the 9 row cells, 9 column cells, and 9 box cells of pos.
func (b *Board) canPlace(pos, value int) bool {
	row, col := posToRow[pos], posToCol[pos]
	boxRow, boxCol := row/3*3, col/3*3

	for i := 0; i < 9; i++ {
		if b.cells[row*9+i] == value ||
			b.cells[i*9+col] == value ||
			b.cells[(boxRow+i/3)*9+boxCol+i%3] == value {
			return false
		}
	}
	return true
}

// IsValid reports whether a board satisfies Sudoku constraints.
// Empty cells are ignored for validation.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, boxCheck [9]uint

	for pos := 0; pos < CellCount; pos++ {
		val := b.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col := posToRow[pos], posToCol[pos]
		box := row/3*3 + col/3
		mask := uint(1 << (val - 1))

		// Check for duplicates in row, column, or box
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// isValidPosition reports whether a given position is in bounds of a Sudoku board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validatePosition checks if a position is within board bounds.
func (b *Board) validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// validateValue checks if a value is a valid cell content (0-9).
func (b *Board) validateValue(val int) error {
	if val != EmptyCell && (val < 1 || val > 9) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
