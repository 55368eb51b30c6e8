package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/* spec:
- placement:
	- happy path: piece lands on the lowest empty row, last move recorded
	- column fills after Rows pieces, the next placement is rejected
	- out-of-range column -> ErrInvalidMove
	- value semantics: placing never mutates the receiver
- legality: LegalMoves ascending, IsFull only when every column topped out
- winner: horizontal, vertical, both diagonals, scanned from the last move
- invariant: occupied cells form a contiguous block from the bottom row up
*/

func TestPlace(t *testing.T) {
	t.Run("piece lands on the lowest empty row", func(t *testing.T) {
		b, row, err := NewBoard().Place(3, Min)

		require.NoError(t, err)
		require.Equal(t, Rows-1, row, "first piece should land on the bottom row")
		require.Equal(t, Min, b.At(Rows-1, 3))

		b, row, err = b.Place(3, Max)
		require.NoError(t, err)
		require.Equal(t, Rows-2, row, "second piece should stack on the first")
		require.Equal(t, Max, b.At(Rows-2, 3))
	})

	t.Run("records the last move", func(t *testing.T) {
		_, _, ok := NewBoard().LastMove()
		require.False(t, ok, "empty board should have no last move")

		b, _, err := NewBoard().Place(5, Max)
		require.NoError(t, err)
		row, col, ok := b.LastMove()
		require.True(t, ok)
		require.Equal(t, Rows-1, row)
		require.Equal(t, 5, col)
	})

	t.Run("a full column rejects the seventh piece", func(t *testing.T) {
		for col := 0; col < Columns; col++ {
			b := NewBoard()
			var err error
			for i := 0; i < Rows; i++ {
				b, _, err = b.Place(col, Max)
				require.NoError(t, err)
			}
			_, row, err := b.Place(col, Min)
			require.ErrorIs(t, err, ErrInvalidMove, "column %d should be full", col)
			require.Equal(t, -1, row)
		}
	})

	t.Run("out-of-range columns are rejected", func(t *testing.T) {
		for _, col := range []int{-1, Columns, 42} {
			_, _, err := NewBoard().Place(col, Min)
			require.ErrorIs(t, err, ErrInvalidMove, "column %d is out of range", col)
		}
	})

	t.Run("placing does not mutate the receiver", func(t *testing.T) {
		b := NewBoard()
		next, _, err := b.Place(0, Max)

		require.NoError(t, err)
		require.Equal(t, Max, next.At(Rows-1, 0))
		require.Equal(t, Empty, b.At(Rows-1, 0), "original board should be untouched")
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("all columns playable on an empty board, ascending order", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, NewBoard().LegalMoves())
	})

	t.Run("full columns drop out", func(t *testing.T) {
		b := NewBoard()
		var err error
		for i := 0; i < Rows; i++ {
			b, _, err = b.Place(2, Min)
			require.NoError(t, err)
		}
		require.Equal(t, []int{0, 1, 3, 4, 5, 6}, b.LegalMoves())
		require.False(t, b.IsFull())
	})
}

func TestBottomUpInvariant(t *testing.T) {
	// Random valid placements never leave a gap under an occupied cell.
	rng := rand.New(rand.NewSource(7))
	b := NewBoard()
	player := Min
	for i := 0; i < 30; i++ {
		moves := b.LegalMoves()
		var err error
		b, _, err = b.Place(moves[rng.Intn(len(moves))], player)
		require.NoError(t, err)
		player = -player
	}

	for col := 0; col < Columns; col++ {
		seenPiece := false
		for row := 0; row < Rows; row++ { // top down
			if b.At(row, col) != Empty {
				seenPiece = true
			} else {
				require.False(t, seenPiece, "gap below an occupied cell in column %d", col)
			}
		}
	}
}

func TestWinner(t *testing.T) {
	t.Run("no winner before any move", func(t *testing.T) {
		require.Equal(t, Empty, NewBoard().Winner())
	})

	t.Run("horizontal win on the bottom row", func(t *testing.T) {
		b := NewBoard()
		var err error
		for _, col := range []int{0, 1, 2} {
			b, _, err = b.Place(col, Min)
			require.NoError(t, err)
		}
		require.Equal(t, Empty, b.Winner(), "three in a row is not a win")

		b, _, err = b.Place(3, Min)
		require.NoError(t, err)
		require.Equal(t, Min, b.Winner())
	})

	t.Run("vertical win", func(t *testing.T) {
		b := NewBoard()
		var err error
		for i := 0; i < 3; i++ {
			b, _, err = b.Place(2, Max)
			require.NoError(t, err)
		}
		require.Equal(t, Empty, b.Winner())

		b, _, err = b.Place(2, Max)
		require.NoError(t, err)
		require.Equal(t, Max, b.Winner())
	})

	t.Run("rising diagonal win", func(t *testing.T) {
		b := NewBoard()
		var err error
		// Min staircase: one filler under column 1, two under 2, three under 3.
		for _, col := range []int{1, 2, 2, 3, 3, 3} {
			b, _, err = b.Place(col, Min)
			require.NoError(t, err)
		}
		for _, col := range []int{0, 1, 2} {
			b, _, err = b.Place(col, Max)
			require.NoError(t, err)
		}
		require.Equal(t, Empty, b.Winner())

		b, _, err = b.Place(3, Max)
		require.NoError(t, err)
		require.Equal(t, Max, b.Winner())
	})

	t.Run("falling diagonal win", func(t *testing.T) {
		b := NewBoard()
		var err error
		for _, col := range []int{5, 4, 4, 3, 3, 3} {
			b, _, err = b.Place(col, Max)
			require.NoError(t, err)
		}
		for _, col := range []int{6, 5, 4} {
			b, _, err = b.Place(col, Min)
			require.NoError(t, err)
		}
		require.Equal(t, Empty, b.Winner())

		b, _, err = b.Place(3, Min)
		require.NoError(t, err)
		require.Equal(t, Min, b.Winner())
	})

	t.Run("full board with no line is a draw", func(t *testing.T) {
		b := drawnBoard()
		require.True(t, b.IsFull())

		// The check only scans from the last move, so probe every cell.
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				b.lastRow, b.lastCol = row, col
				require.Equal(t, Empty, b.Winner(),
					"unexpected line through (%d,%d)", row, col)
			}
		}
	})
}

// drawnBoard tiles the grid in 2-row bands of alternating columns, which
// caps every horizontal, vertical and diagonal run at two.
func drawnBoard() Board {
	b := NewBoard()
	for row := 0; row < Rows; row++ {
		band := 0
		if row == 2 || row == 3 {
			band = 1
		}
		for col := 0; col < Columns; col++ {
			if (band+col)%2 == 0 {
				b.grid[row][col] = Min
			} else {
				b.grid[row][col] = Max
			}
		}
	}
	b.lastRow, b.lastCol = 0, 0
	return b
}
