package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type playerRepo interface {
	RecordWin(ctx context.Context, id entity.PlayerID) error
	RecordLoss(ctx context.Context, id entity.PlayerID) error
	RecordTie(ctx context.Context, id entity.PlayerID) error

	GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
	Top(ctx context.Context, limit int) ([]*entity.Player, error)
}

// PlayerService keeps the win, loss and tie counters of identities.
type PlayerService struct {
	playerRepo      playerRepo
	leaderboardSize int
}

func NewPlayerService(playerRepo playerRepo, leaderboardSize int) *PlayerService {
	return &PlayerService{
		playerRepo:      playerRepo,
		leaderboardSize: leaderboardSize,
	}
}

// RecordOutcome credits a finished game: a win and a loss, or a tie for both sides.
// Seats without an identity, like the computer's, are skipped.
func (that *PlayerService) RecordOutcome(ctx context.Context, game *entity.Game) error {
	var errs []error

	switch game.Winner {
	case entity.ResultX, entity.ResultO:
		winner := game.PlayerFor(game.Winner.Mark())
		loser := game.PlayerFor(game.Winner.Mark().Opponent())

		if winner != "" {
			errs = append(errs, that.playerRepo.RecordWin(ctx, winner))
		}
		if loser != "" {
			errs = append(errs, that.playerRepo.RecordLoss(ctx, loser))
		}
	case entity.ResultDraw:
		for _, player := range []entity.PlayerID{game.PlayerX, game.PlayerO} {
			if player != "" {
				errs = append(errs, that.playerRepo.RecordTie(ctx, player))
			}
		}
	case entity.NoResult:
		return nil
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to record outcome of game %s: %w", game.ID, err)
	}

	return nil
}

func (that *PlayerService) GetPlayerByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// Leaderboard returns the identities with the most wins.
func (that *PlayerService) Leaderboard(ctx context.Context) ([]*entity.Player, error) {
	players, err := that.playerRepo.Top(ctx, that.leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return players, nil
}
