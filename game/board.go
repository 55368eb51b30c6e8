package game

import (
	"errors"
	"strings"
)

const (
	Rows    = 6
	Columns = 7
)

// Cell holds the contents of one board square. The non-empty values double
// as player identifiers and winner indicators: Max is the AI (+1), Min is
// the human (-1).
type Cell int8

const (
	Empty Cell = 0
	Max   Cell = 1
	Min   Cell = -1
)

func (c Cell) String() string {
	switch c {
	case Max:
		return "Max"
	case Min:
		return "Min"
	default:
		return "Empty"
	}
}

// ErrInvalidMove is returned when a piece is dropped into a column that is
// out of range or already full. It only occurs on boundary input: a move
// taken from LegalMoves always applies.
var ErrInvalidMove = errors.New("invalid move")

// Scan axes for the win check: horizontal, vertical and the two diagonals.
var (
	dirRow = [4]int{0, 1, 1, 1}
	dirCol = [4]int{1, 0, 1, -1}
)

// Board is the state of a connect-four game. It is a plain value: Place
// returns a copy with the move applied, so boards snapshotted into a search
// tree never alias each other.
type Board struct {
	grid    [Rows][Columns]Cell
	lastRow int
	lastCol int
}

// NewBoard returns an empty board with no last move recorded.
func NewBoard() Board {
	return Board{lastRow: -1, lastCol: -1}
}

// Place drops a piece for player into the given column and returns the new
// board plus the row the piece landed in, or ErrInvalidMove if the column
// is out of range or full.
func (b Board) Place(column int, player Cell) (Board, int, error) {
	if column < 0 || column >= Columns || b.grid[0][column] != Empty {
		return b, -1, ErrInvalidMove
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = player
			b.lastRow = row
			b.lastCol = column
			return b, row, nil
		}
	}
	// The top cell was empty, so a free row must exist.
	panic("game: no free row in a non-full column")
}

// LegalMoves returns the playable columns in ascending order. The order is
// load-bearing: the searcher expands untried moves in exactly this order.
func (b Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.grid[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// IsFull reports whether every column is topped out.
func (b Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b.grid[0][col] == Empty {
			return false
		}
	}
	return true
}

// Winner returns Max or Min if that player has four in a row, Empty
// otherwise. Only lines through the most recent move are examined: the
// board grows one ply at a time, so any new win must include the last
// piece placed. Before any move it returns Empty.
func (b Board) Winner() Cell {
	if b.lastRow < 0 {
		return Empty
	}
	for dir := 0; dir < 4; dir++ {
		maxRun, minRun := 0, 0
		for offset := -3; offset <= 3; offset++ {
			row := b.lastRow + offset*dirRow[dir]
			col := b.lastCol + offset*dirCol[dir]
			if row < 0 || row >= Rows || col < 0 || col >= Columns {
				// Off-board cells only occur at the ends of a scan line,
				// so resetting here never splits an on-board run.
				maxRun, minRun = 0, 0
				continue
			}
			switch b.grid[row][col] {
			case Max:
				maxRun++
				minRun = 0
			case Min:
				minRun++
				maxRun = 0
			default:
				maxRun, minRun = 0, 0
			}
			if maxRun >= 4 {
				return Max
			}
			if minRun >= 4 {
				return Min
			}
		}
	}
	return Empty
}

// At returns the cell at the given coordinates. Row 0 is the top row.
func (b Board) At(row, col int) Cell {
	return b.grid[row][col]
}

// LastMove returns the coordinates of the most recent piece, or ok=false
// before any move.
func (b Board) LastMove() (row, col int, ok bool) {
	if b.lastRow < 0 {
		return 0, 0, false
	}
	return b.lastRow, b.lastCol, true
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			switch b.grid[row][col] {
			case Max:
				sb.WriteString("O ")
			case Min:
				sb.WriteString("X ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("0 1 2 3 4 5 6")
	return sb.String()
}
