package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour/game"
	"connectfour/searcher"

	"golang.org/x/exp/rand"
)

// Agent produces a column to play for the given board. The engine
// validates every returned move; only input-backed agents are expected to
// ever fail validation.
type Agent interface {
	FindMove(board game.Board) (int, error)
}

// SearchAgent picks moves with an MCTS searcher.
type SearchAgent struct {
	mcts *searcher.MCTS
}

func NewSearchAgent(mcts *searcher.MCTS) *SearchAgent {
	if mcts == nil {
		panic("need a searcher")
	}
	return &SearchAgent{mcts: mcts}
}

func (a *SearchAgent) FindMove(board game.Board) (int, error) {
	return a.mcts.FindBestMove(board), nil
}

// RandomAgent plays a uniformly random legal move. Used as a baseline
// opponent in demo games.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		panic("need a random source")
	}
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) FindMove(board game.Board) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		panic("engine: asked for a move on a terminal board")
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// InputAgent reads one column number per move from r, echoing the board
// and a prompt to out. Unparseable input counts as an invalid move and the
// engine asks again.
type InputAgent struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewInputAgent(r io.Reader, out io.Writer) *InputAgent {
	return &InputAgent{scanner: bufio.NewScanner(r), out: out}
}

func (a *InputAgent) FindMove(board game.Board) (int, error) {
	fmt.Fprintf(a.out, "%s\ncolumn [0-%d]: ", board, game.Columns-1)
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	column, err := strconv.Atoi(strings.TrimSpace(a.scanner.Text()))
	if err != nil {
		return 0, game.ErrInvalidMove
	}
	return column, nil
}
