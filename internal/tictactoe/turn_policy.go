package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

// CanMove reports whether player may make the next move in game.
func CanMove(game *entity.Game, player entity.PlayerID) bool {
	if player == "" {
		return false
	}

	switch {
	// the computer is never an identity, so only X moves and only on its own turn
	case game.VsComputer:
		return game.PlayerX != "" && game.CurrentPlayer == entity.PlayerX && player == game.PlayerX
	case game.PlayerX != "" && game.PlayerO != "":
		return player == game.PlayerFor(game.CurrentPlayer)
	// no opponent yet
	case game.PlayerX != "":
		return player == game.PlayerX
	default:
		return false
	}
}

// AuthorizeMove returns apperror.ErrNotAuthorized when player may not move.
func AuthorizeMove(game *entity.Game, player entity.PlayerID) error {
	if !CanMove(game, player) {
		return fmt.Errorf("%w: player %q cannot move in game %s", apperror.ErrNotAuthorized, player, game.ID)
	}

	return nil
}

// AuthorizeUndo allows undo only to participants of computer games.
func AuthorizeUndo(game *entity.Game, player entity.PlayerID) error {
	if !game.VsComputer {
		return fmt.Errorf("%w: undo is only allowed against the computer", apperror.ErrNotAuthorized)
	}

	if !game.IsParticipant(player) {
		return fmt.Errorf("%w: player %q is not in game %s", apperror.ErrNotAuthorized, player, game.ID)
	}

	return nil
}
