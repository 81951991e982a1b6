package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/tictactoe"
)

// BotService plays the computer side of a game.
type BotService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) *BotService {
	return &BotService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn picks a cell with the game's difficulty and plays it as the computer.
func (that *BotService) MakeTurn(game *entity.Game) error {
	cell := tictactoe.StrategyFor(game.Difficulty)(game.Board)
	if cell == -1 {
		return apperror.ErrNoAvailableMoves
	}

	that.logger.Debug("computer reply chosen", "gameID", game.ID, "difficulty", game.Difficulty.String(), "cell", cell)

	if _, err := game.MakeTurn(tictactoe.Computer, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
