package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const (
	// Unlimited disables the depth cutoff and searches the whole game tree.
	Unlimited = -1

	winScore = 10
)

const (
	// Computer is the maximizing side, the human plays the minimizing side.
	Computer = entity.PlayerO
	Human    = entity.PlayerX
)

// Evaluate scores a position from the computer's point of view: +10 if it owns a line, -10 if the human does.
func Evaluate(board entity.Board) int {
	switch board.Winner() {
	case Computer:
		return winScore
	case Human:
		return -winScore
	default:
		return 0
	}
}

// Search is a depth-bounded minimax. Wins are worth less the deeper they are found and losses cost less the
// later they happen, so quick wins and slow losses are preferred. Past maxDepth every position scores 0.
// The board is passed by value, so the caller's board is never modified.
func Search(board entity.Board, depth int, maximizing bool, maxDepth int) int {
	switch score := Evaluate(board); score {
	case winScore:
		return score - depth
	case -winScore:
		return score + depth
	}

	if board.IsFull() {
		return 0
	}

	if maxDepth != Unlimited && depth >= maxDepth {
		return 0
	}

	mover, best := Human, math.MaxInt
	if maximizing {
		mover, best = Computer, math.MinInt
	}

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = mover

		score := Search(next, depth+1, !maximizing, maxDepth)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// FindBestMove returns the computer's best cell, or -1 when the board is full.
// On equal scores the lowest index wins.
func FindBestMove(board entity.Board, maxDepth int) int {
	bestMove, bestScore := -1, math.MinInt

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = Computer

		if score := Search(next, 0, false, maxDepth); score > bestScore {
			bestMove, bestScore = cell, score
		}
	}

	return bestMove
}
