package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const (
	e = entity.EmptyCell
	x = entity.PlayerX
	o = entity.PlayerO
)

func TestEvaluate(t *testing.T) {
	assert.Equal(t, 10, Evaluate(entity.Board{o, o, o, x, x, e, e, e, e}))
	assert.Equal(t, -10, Evaluate(entity.Board{x, o, e, x, o, e, x, e, e}))
	assert.Equal(t, 0, Evaluate(entity.Board{x, o, x, x, o, x, o, x, o}))
	assert.Equal(t, 0, Evaluate(entity.Board{}))
}

func TestSearch(t *testing.T) {
	t.Run("Wins are discounted by depth", func(t *testing.T) {
		// Given: a board the computer has already won
		board := entity.Board{o, o, o, x, x, e, x, e, e}

		// Then: the score shrinks with depth
		assert.Equal(t, 10, Search(board, 0, false, Unlimited))
		assert.Equal(t, 7, Search(board, 3, false, Unlimited))
	})

	t.Run("Losses are discounted by depth", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		assert.Equal(t, -10, Search(board, 0, true, Unlimited))
		assert.Equal(t, -8, Search(board, 2, true, Unlimited))
	})

	t.Run("Full board without a line is neutral", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, x, o, x, o}

		assert.Equal(t, 0, Search(board, 4, true, Unlimited))
	})

	t.Run("Depth cutoff is neutral even when a loss is coming", func(t *testing.T) {
		// Given: the human threatens two lines and the computer is to move
		board := entity.Board{x, x, e, x, o, e, e, e, o}

		// When: the horizon is already reached
		score := Search(board, 2, true, 2)

		// Then: the position is not explored
		assert.Equal(t, 0, score)
		assert.Negative(t, Search(board, 0, true, Unlimited))
	})

	t.Run("Search does not modify the board", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, e}
		before := board

		_ = Search(board, 0, false, Unlimited)
		_ = FindBestMove(board, Unlimited)

		assert.Equal(t, before, board)
	})
}

func TestFindBestMove(t *testing.T) {
	t.Run("Full board has no move", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, x, o, x, o}

		assert.Equal(t, -1, FindBestMove(board, Unlimited))
		assert.Equal(t, -1, FindBestMove(board, harderDepth))
	})

	t.Run("Corner opening is answered in the center", func(t *testing.T) {
		board := entity.Board{x, e, e, e, e, e, e, e, e}

		assert.Equal(t, 4, FindBestMove(board, Unlimited))
	})

	t.Run("Immediate win is taken over a block", func(t *testing.T) {
		// Given: O can win on 5 and X threatens 2
		board := entity.Board{x, x, e, o, o, e, e, e, x}

		assert.Equal(t, 5, FindBestMove(board, Unlimited))
		assert.Equal(t, 5, FindBestMove(board, harderDepth))
	})

	t.Run("Threat is blocked within the horizon", func(t *testing.T) {
		// Given: X threatens the top row
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		assert.Equal(t, 2, FindBestMove(board, harderDepth))
		assert.Equal(t, 2, FindBestMove(board, Unlimited))
	})

	t.Run("Ties resolve to the lowest index", func(t *testing.T) {
		// Given: positions where every reply scores the same
		empty := entity.Board{}

		// Then: the first cell is returned
		assert.Equal(t, 0, FindBestMove(empty, Unlimited))
		assert.Equal(t, 0, FindBestMove(empty, harderDepth))
		assert.Equal(t, 0, FindBestMove(empty, 0))
	})

	t.Run("Chosen move has the maximum score and no lower index shares it", func(t *testing.T) {
		boards := []entity.Board{
			{x, e, e, e, e, e, e, e, e},
			{e, e, e, e, x, e, e, e, e},
			{x, e, e, e, o, e, e, e, x},
			{e, x, e, e, o, e, e, e, x},
		}

		for _, board := range boards {
			for _, maxDepth := range []int{harderDepth, Unlimited} {
				move := FindBestMove(board, maxDepth)
				require.NotEqual(t, -1, move)

				scores := map[int]int{}
				best := -1 << 31
				for _, cell := range board.EmptyCells() {
					next := board
					next[cell] = o
					scores[cell] = Search(next, 0, false, maxDepth)
					best = max(best, scores[cell])
				}

				assert.Equal(t, best, scores[move], "board %v depth %d", board, maxDepth)
				for _, cell := range board.EmptyCells() {
					if cell < move {
						assert.Less(t, scores[cell], best, "board %v depth %d", board, maxDepth)
					}
				}
			}
		}
	})
}

// TestImpossibleNeverLoses plays every possible human line against the unlimited search.
func TestImpossibleNeverLoses(t *testing.T) {
	strategy := StrategyFor(entity.DifficultyImpossible)

	var games, computerWins int
	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = x

			require.NotEqual(t, x, next.Winner(), "human won with %v", next)
			if next.IsFull() {
				games++
				continue
			}

			reply := strategy(next)
			require.NotEqual(t, -1, reply)
			require.Equal(t, e, next[reply])
			next[reply] = o

			if next.Winner() == o {
				games++
				computerWins++
				continue
			}

			play(next)
		}
	}

	play(entity.Board{})

	assert.Positive(t, games)
	assert.Positive(t, computerWins)
}
