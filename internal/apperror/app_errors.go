package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("cell index is out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotAuthorized    = errors.New("player is not allowed to act in this game")
	ErrGameNotFound     = errors.New("game not found")
	ErrNotJoinable      = errors.New("game is not open for joining")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidIdentity  = errors.New("player identity is empty")
)
