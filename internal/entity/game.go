package entity

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

var ErrUnknownToken = errors.New("unknown token")

// PlayerID is an opaque handle for an external identity. The empty value means the seat is not assigned.
type PlayerID string

type Game struct {
	ID            string     `json:"id"`
	Board         Board      `json:"board"`
	CurrentPlayer Mark       `json:"currentPlayer"`
	Status        Status     `json:"status"`
	Winner        Result     `json:"winner"`
	MoveHistory   []int      `json:"moveHistory"`
	VsComputer    bool       `json:"vsComputer"`
	Difficulty    Difficulty `json:"difficulty"`
	PlayerX       PlayerID   `json:"playerX,omitempty"`
	PlayerO       PlayerID   `json:"playerO,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Snapshot is the externally visible part of a game at one point in time.
type Snapshot struct {
	Board         Board  `json:"board"`
	CurrentPlayer Mark   `json:"currentPlayer"`
	Winner        Result `json:"winner"`
	Status        Status `json:"status"`
}

// NewGame returns a fresh game: empty board, X to move, status NEW, difficulty HARDER.
func NewGame(id string) *Game {
	return &Game{
		ID:            id,
		CurrentPlayer: PlayerX,
		Status:        StatusNew,
		Winner:        NoResult,
		MoveHistory:   make([]int, 0, BoardSize),
		Difficulty:    DifficultyHarder,
		CreatedAt:     time.Now().UTC(),
	}
}

// MakeTurn places mark on cell. A rejected move leaves the game untouched.
func (that *Game) MakeTurn(mark Mark, cell int) (Snapshot, error) {
	if !IsValidCell(cell) {
		return that.Snapshot(), fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, cell)
	}

	if that.Board[cell] != EmptyCell {
		return that.Snapshot(), fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	if that.Winner != NoResult {
		return that.Snapshot(), apperror.ErrGameFinished
	}

	if mark != that.CurrentPlayer {
		return that.Snapshot(), fmt.Errorf("%w: it's not %s's turn", apperror.ErrNotAuthorized, mark)
	}

	that.Board[cell] = mark
	that.MoveHistory = append(that.MoveHistory, cell)

	// win is checked before draw so that a winning last move is not reported as a tie
	switch {
	case that.Board.Winner() == mark:
		that.Winner = ResultFor(mark)
		that.Status = StatusFinished
	case that.Board.IsFull():
		that.Winner = ResultDraw
		that.Status = StatusFinished
	default:
		that.CurrentPlayer = mark.Opponent()
		that.Status = StatusInProgress
	}

	return that.Snapshot(), nil
}

// UndoMove takes back the most recent move. With an empty history it changes nothing and returns false.
func (that *Game) UndoMove() bool {
	if len(that.MoveHistory) == 0 {
		return false
	}

	last := that.MoveHistory[len(that.MoveHistory)-1]
	that.MoveHistory = that.MoveHistory[:len(that.MoveHistory)-1]

	// the side that made the move is to move again, also when the turn was frozen by a finishing move
	that.CurrentPlayer = that.Board[last]
	that.Board[last] = EmptyCell
	that.Winner = NoResult
	that.Status = StatusInProgress

	return true
}

// Join seats player as O in a game that is waiting for an opponent.
func (that *Game) Join(player PlayerID) error {
	if !that.IsWaiting() {
		return fmt.Errorf("%w: status is %s", apperror.ErrNotJoinable, that.Status)
	}

	if player == that.PlayerX {
		return fmt.Errorf("%w: cannot join own game", apperror.ErrNotJoinable)
	}

	that.PlayerO = player
	that.Status = StatusInProgress

	return nil
}

func (that *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:         that.Board,
		CurrentPlayer: that.CurrentPlayer,
		Winner:        that.Winner,
		Status:        that.Status,
	}
}

// Clone returns a deep copy that shares no memory with the receiver.
func (that *Game) Clone() *Game {
	clone := *that
	clone.MoveHistory = slices.Clone(that.MoveHistory)

	return &clone
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// IsParticipant reports whether player holds one of the two seats.
func (that *Game) IsParticipant(player PlayerID) bool {
	if player == "" {
		return false
	}

	return player == that.PlayerX || player == that.PlayerO
}

// PlayerFor returns the identity seated on mark. The computer seat is always empty.
func (that *Game) PlayerFor(mark Mark) PlayerID {
	switch mark {
	case PlayerX:
		return that.PlayerX
	case PlayerO:
		return that.PlayerO
	default:
		return ""
	}
}
