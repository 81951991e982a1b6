package tictactoe

import "github.com/rocketscienceinc/tictactoe-server/internal/entity"

const harderDepth = 2

// Strategy picks the computer's reply for a board, -1 when no cell is free.
type Strategy func(board entity.Board) int

// StrategyFor maps a difficulty tier to its move selection.
func StrategyFor(difficulty entity.Difficulty) Strategy {
	switch difficulty {
	case entity.DifficultyEasy:
		return firstEmpty
	case entity.DifficultyImpossible:
		return func(board entity.Board) int {
			return FindBestMove(board, Unlimited)
		}
	default:
		return func(board entity.Board) int {
			return FindBestMove(board, harderDepth)
		}
	}
}

func firstEmpty(board entity.Board) int {
	return board.FirstEmpty()
}
