package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliarasea/sudoku/internal/board"
	"github.com/aliarasea/sudoku/internal/solver"
)

var countSolutions bool

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle given as an 81-character string, with '.' or '0'
for empty cells. The grid is read from the argument, or from standard input
when no argument is given.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  cat puzzle.txt | sudoku solve
  sudoku solve --count ...`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&countSolutions, "count", "c", false, "Count solutions (up to two) instead of solving")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, err := readGrid(args)
	if err != nil {
		return err
	}

	b, err := board.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}

	if countSolutions {
		switch n := solver.CountUpToTwo(b); n {
		case 0:
			fmt.Println("no solution")
		case 1:
			fmt.Println("unique solution")
		default:
			fmt.Println("multiple solutions")
		}
		return nil
	}

	solved, err := solver.New(b, nil).Solve()
	if err != nil {
		return err
	}

	fmt.Println(solved.Format())
	return nil
}

// readGrid takes the grid from the argument or standard input and strips
// all whitespace so multi-line grids are accepted.
func readGrid(args []string) (string, error) {
	if len(args) == 1 {
		return stripSpace(args[0]), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return stripSpace(string(data)), nil
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
