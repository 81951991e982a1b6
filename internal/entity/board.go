package entity

const BoardSize = 9

// WinCombos are the rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major. It is a value type: copying a Board copies its cells.
type Board [BoardSize]Mark

// Winner returns the mark that owns a completed line, or EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsWin() bool {
	return that.Winner() != EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsDraw reports a full board with no completed line.
func (that Board) IsDraw() bool {
	return that.IsFull() && !that.IsWin()
}

// EmptyCells lists free cell indexes in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// FirstEmpty returns the lowest free index, or -1 on a full board.
func (that Board) FirstEmpty() int {
	for i, cell := range that {
		if cell == EmptyCell {
			return i
		}
	}

	return -1
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
