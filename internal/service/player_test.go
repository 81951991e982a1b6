package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

func TestPlayerService_RecordOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("Winner and loser are credited", func(t *testing.T) {
		// Given: bob won as O against alice
		repo := &mockPlayerRepo{}
		repo.On("RecordWin", mock.Anything, entity.PlayerID("bob")).Return(nil).Once()
		repo.On("RecordLoss", mock.Anything, entity.PlayerID("alice")).Return(nil).Once()

		game := humanGame("g1")
		game.Winner = entity.ResultO
		game.Status = entity.StatusFinished

		// When
		err := NewPlayerService(repo, 10).RecordOutcome(ctx, game)

		// Then
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Draw credits a tie to both", func(t *testing.T) {
		repo := &mockPlayerRepo{}
		repo.On("RecordTie", mock.Anything, entity.PlayerID("alice")).Return(nil).Once()
		repo.On("RecordTie", mock.Anything, entity.PlayerID("bob")).Return(nil).Once()

		game := humanGame("g1")
		game.Winner = entity.ResultDraw

		err := NewPlayerService(repo, 10).RecordOutcome(ctx, game)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Computer seat is skipped", func(t *testing.T) {
		// Given: the computer beat alice
		repo := &mockPlayerRepo{}
		repo.On("RecordLoss", mock.Anything, entity.PlayerID("alice")).Return(nil).Once()

		game := computerGame("g1", entity.DifficultyImpossible)
		game.Winner = entity.ResultO

		// When
		err := NewPlayerService(repo, 10).RecordOutcome(ctx, game)

		// Then: only alice's loss is recorded
		require.NoError(t, err)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "RecordWin", mock.Anything, mock.Anything)
	})

	t.Run("Unfinished game records nothing", func(t *testing.T) {
		repo := &mockPlayerRepo{}

		err := NewPlayerService(repo, 10).RecordOutcome(ctx, humanGame("g1"))

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Failures are reported after all updates", func(t *testing.T) {
		repo := &mockPlayerRepo{}
		repo.On("RecordWin", mock.Anything, entity.PlayerID("alice")).Return(errRedisDown).Once()
		repo.On("RecordLoss", mock.Anything, entity.PlayerID("bob")).Return(nil).Once()

		game := humanGame("g1")
		game.Winner = entity.ResultX

		err := NewPlayerService(repo, 10).RecordOutcome(ctx, game)

		require.ErrorIs(t, err, errRedisDown)
		repo.AssertExpectations(t)
	})
}

func TestPlayerService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the configured size", func(t *testing.T) {
		expected := []*entity.Player{
			{ID: "alice", Wins: 5, GamesPlayed: 6},
			{ID: "bob", Wins: 2, GamesPlayed: 7},
		}
		repo := &mockPlayerRepo{}
		repo.On("Top", mock.Anything, 3).Return(expected, nil).Once()

		players, err := NewPlayerService(repo, 3).Leaderboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, players)
		repo.AssertExpectations(t)
	})

	t.Run("Storage error", func(t *testing.T) {
		repo := &mockPlayerRepo{}
		repo.On("Top", mock.Anything, 10).Return(nil, errRedisDown).Once()

		_, err := NewPlayerService(repo, 10).Leaderboard(ctx)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestPlayerService_GetPlayerByID(t *testing.T) {
	repo := &mockPlayerRepo{}
	repo.On("GetByID", mock.Anything, entity.PlayerID("carol")).
		Return(&entity.Player{ID: "carol"}, nil).Once()

	player, err := NewPlayerService(repo, 10).GetPlayerByID(context.Background(), "carol")

	require.NoError(t, err)
	assert.Equal(t, entity.PlayerID("carol"), player.ID)
	assert.Zero(t, player.GamesPlayed)
}
