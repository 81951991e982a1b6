package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

func TestStrategyFor(t *testing.T) {
	t.Run("Easy takes the lowest empty cell whatever the board", func(t *testing.T) {
		easy := StrategyFor(entity.DifficultyEasy)

		boards := map[int]entity.Board{
			0:  {},
			1:  {x, e, e, e, e, e, e, e, e},
			2:  {x, x, e, e, o, e, e, e, e},
			3:  {x, o, x, e, o, e, e, e, e},
			8:  {x, o, x, x, o, o, o, x, e},
			-1: {x, o, x, x, o, x, o, x, o},
		}

		for expected, board := range boards {
			assert.Equal(t, expected, easy(board), "board %v", board)
		}
	})

	t.Run("Easy ignores a winning reply", func(t *testing.T) {
		// Given: O could win on 5
		board := entity.Board{x, x, e, o, o, e, e, e, x}

		// Then: easy still takes cell 2
		assert.Equal(t, 2, StrategyFor(entity.DifficultyEasy)(board))
	})

	t.Run("Harder searches two plies", func(t *testing.T) {
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		assert.Equal(t, FindBestMove(board, 2), StrategyFor(entity.DifficultyHarder)(board))
		assert.Equal(t, 2, StrategyFor(entity.DifficultyHarder)(board))
	})

	t.Run("Unknown difficulty behaves like harder", func(t *testing.T) {
		board := entity.Board{x, e, e, e, e, e, e, e, e}

		assert.Equal(t,
			StrategyFor(entity.DifficultyHarder)(board),
			StrategyFor(entity.ParseDifficulty("legendary"))(board),
		)
	})

	t.Run("Impossible answers a corner with the center", func(t *testing.T) {
		board := entity.Board{x, e, e, e, e, e, e, e, e}

		assert.Equal(t, 4, StrategyFor(entity.DifficultyImpossible)(board))
	})
}
