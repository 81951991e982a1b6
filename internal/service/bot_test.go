package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

func TestBotService_MakeTurn(t *testing.T) {
	bot := NewBotService(testLogger())

	t.Run("Impossible blocks the open line", func(t *testing.T) {
		// Given: X threatens the top row
		game := computerGame("g1", entity.DifficultyImpossible, 0, 4, 1)

		// When
		err := bot.MakeTurn(game)

		// Then
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[2])
		assert.Equal(t, entity.PlayerX, game.CurrentPlayer)
	})

	t.Run("Easy takes the first empty cell", func(t *testing.T) {
		game := computerGame("g1", entity.DifficultyEasy, 0)

		err := bot.MakeTurn(game)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[1])
	})

	t.Run("Full board", func(t *testing.T) {
		game := computerGame("g1", entity.DifficultyHarder, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		err := bot.MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Not the computer's turn", func(t *testing.T) {
		game := computerGame("g1", entity.DifficultyEasy)

		err := bot.MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrNotAuthorized)
	})
}
