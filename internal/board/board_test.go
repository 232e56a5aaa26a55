package board

import (
	"errors"
	"strings"
	"testing"
)

const (
	fullValidGrid = "243156798" +
		"158739246" +
		"679284351" +
		"426571839" +
		"981362475" +
		"537498162" +
		"315627984" +
		"864913527" +
		"792845613"

	partialGrid = "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"
)

func mustBoard(t *testing.T, s string) *Board {
	t.Helper()
	b, err := NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString() error = %v", err)
	}
	return b
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid full grid", input: fullValidGrid},
		{name: "valid partial grid", input: partialGrid},
		{name: "dots and zeros mix", input: strings.Repeat(".0", 40) + "5"},
		{name: "too short", input: "123", wantErr: true},
		{name: "too long", input: strings.Repeat(".", 82), wantErr: true},
		{name: "bad character", input: strings.Repeat(".", 80) + "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFromString() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	b := mustBoard(t, partialGrid)
	clone := b.Clone()

	if !b.Equals(clone) {
		t.Fatal("clone should equal its source")
	}

	if err := clone.Set(MakePos(0, 2), 4); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if b.Get(MakePos(0, 2)) != EmptyCell {
		t.Error("mutating the clone mutated the source")
	}
	if b.Equals(clone) {
		t.Error("boards should differ after mutating the clone")
	}
}

func TestEquals(t *testing.T) {
	a := mustBoard(t, partialGrid)
	b := mustBoard(t, partialGrid)

	if !a.Equals(b) {
		t.Error("identical boards should be equal")
	}

	b.SetForce(80, 1)
	if a.Equals(b) {
		t.Error("boards differing in one cell should not be equal")
	}

	if a.Equals(nil) {
		t.Error("non-nil board should not equal nil")
	}
}

func TestIsCompleteIndependentOfLegality(t *testing.T) {
	b := New()
	if b.IsComplete() {
		t.Error("empty board reported complete")
	}

	// A board full of ones is complete but wildly illegal.
	for pos := 0; pos < CellCount; pos++ {
		if err := b.Set(pos, 1); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if !b.IsComplete() {
		t.Error("full board reported incomplete")
	}
	if b.IsValid() {
		t.Error("board of all ones reported valid")
	}

	full := mustBoard(t, fullValidGrid)
	if !full.IsComplete() || !full.IsValid() {
		t.Error("valid full grid should be complete and valid")
	}

	almost := full.Clone()
	almost.SetForce(40, EmptyCell)
	if almost.IsComplete() {
		t.Error("board with one empty cell reported complete")
	}
}

func TestSetPreconditions(t *testing.T) {
	b := New()

	tests := []struct {
		name    string
		pos     int
		val     int
		wantErr error
	}{
		{name: "negative position", pos: -1, val: 5, wantErr: ErrInvalidPosition},
		{name: "position too large", pos: CellCount, val: 5, wantErr: ErrInvalidPosition},
		{name: "value too large", pos: 0, val: 10, wantErr: ErrInvalidValue},
		{name: "negative value", pos: 0, val: -3, wantErr: ErrInvalidValue},
		{name: "valid placement", pos: 0, val: 9},
		{name: "clearing via zero", pos: 0, val: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Set(tt.pos, tt.val)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Set() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Set() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGivenAndEmptyCounts(t *testing.T) {
	b := New()
	if b.GivenCount() != 0 || b.EmptyCount() != CellCount {
		t.Fatalf("empty board counts = %d/%d", b.GivenCount(), b.EmptyCount())
	}

	b.SetForce(0, 5)
	b.SetForce(1, 6)
	if b.GivenCount() != 2 {
		t.Errorf("GivenCount() = %d, want 2", b.GivenCount())
	}

	// Overwriting a filled cell must not change the count.
	b.SetForce(0, 7)
	if b.GivenCount() != 2 {
		t.Errorf("GivenCount() after overwrite = %d, want 2", b.GivenCount())
	}

	if err := b.Clear(0); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if b.GivenCount() != 1 {
		t.Errorf("GivenCount() after clear = %d, want 1", b.GivenCount())
	}

	// Clearing an already empty cell is a no-op.
	if err := b.Clear(0); err != nil {
		t.Fatalf("Clear() on empty cell error = %v", err)
	}
	if b.GivenCount() != 1 {
		t.Errorf("GivenCount() after double clear = %d, want 1", b.GivenCount())
	}
}

func TestStringRoundTrip(t *testing.T) {
	b := mustBoard(t, partialGrid)
	if got := b.String(); got != partialGrid {
		t.Errorf("String() = %q, want %q", got, partialGrid)
	}

	again := mustBoard(t, b.String())
	if !b.Equals(again) {
		t.Error("string round trip changed the board")
	}
}

func TestMakePos(t *testing.T) {
	if got := MakePos(0, 0); got != 0 {
		t.Errorf("MakePos(0,0) = %d", got)
	}
	if got := MakePos(8, 8); got != 80 {
		t.Errorf("MakePos(8,8) = %d", got)
	}
	if got := MakePos(9, 0); got != InvalidCell {
		t.Errorf("MakePos(9,0) = %d, want InvalidCell", got)
	}
	if got := MakePos(0, -1); got != InvalidCell {
		t.Errorf("MakePos(0,-1) = %d, want InvalidCell", got)
	}

	row, col := RowCol(MakePos(4, 7))
	if row != 4 || col != 7 {
		t.Errorf("RowCol() = (%d,%d), want (4,7)", row, col)
	}
}
