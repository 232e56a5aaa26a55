// Package api exposes the generator and solver over a small JSON HTTP API.
// It is a stateless façade: no puzzle is persisted, every request runs one
// computation and returns its result.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aliarasea/sudoku/internal/board"
	"github.com/aliarasea/sudoku/internal/generator"
	"github.com/aliarasea/sudoku/internal/solver"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter() *gin.Engine {
	e := gin.Default()
	v1 := e.Group("/api").
		Group("/v1")

	v1.POST("/generate", handleGenerate)
	v1.POST("/solve", handleSolve)

	return e
}

type generateRequest struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed"`
}

type generateResponse struct {
	Puzzle     string `json:"puzzle"`
	Solution   string `json:"solution"`
	Difficulty string `json:"difficulty"`
	Givens     int    `json:"givens"`
}

func handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}

	diff := generator.Medium
	if req.Difficulty != "" {
		var err error
		diff, err = generator.ParseDifficulty(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty", "message": err.Error()})
			return
		}
	}

	opts := generator.DefaultOptions(diff)
	opts.Seed = req.Seed

	p, err := generator.New(opts).Generate()
	if err != nil {
		log.Err(err).Str("difficulty", diff.String()).Msg("generate puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Puzzle:     p.Givens.String(),
		Solution:   p.Solution.String(),
		Difficulty: p.Difficulty.String(),
		Givens:     p.GivenCount,
	})
}

type solveRequest struct {
	Grid string `json:"grid"`

	// Count switches to the uniqueness check: instead of one solution,
	// report the solution count capped at two.
	Count bool `json:"count"`
}

type solveResponse struct {
	Solved    bool   `json:"solved"`
	Solutions int    `json:"solutions,omitempty"`
	Grid      string `json:"grid,omitempty"`
}

func handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}

	b, err := board.NewFromString(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grid", "message": err.Error()})
		return
	}

	if req.Count {
		n := solver.CountUpToTwo(b)
		c.JSON(http.StatusOK, solveResponse{Solved: n > 0, Solutions: n})
		return
	}

	solved, err := solver.New(b, nil).Solve()
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) || errors.Is(err, solver.ErrInvalidPuzzle) {
			c.JSON(http.StatusOK, solveResponse{Solved: false})
			return
		}
		log.Err(err).Msg("solve puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "solve failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, solveResponse{Solved: true, Grid: solved.String()})
}
