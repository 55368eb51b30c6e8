package engine

import (
	"errors"
	"fmt"

	"connectfour/game"

	"github.com/rs/zerolog/log"
)

// maxRejections bounds how often one ply may be re-requested after invalid
// input, so a misbehaving agent cannot loop the engine forever.
const maxRejections = 10

// Engine runs one game between the Max agent (the AI side) and the Min
// agent (the human side). Min opens.
type Engine struct {
	Board  game.Board
	agents map[game.Cell]Agent
}

func New(maxAgent, minAgent Agent) *Engine {
	if maxAgent == nil || minAgent == nil {
		panic("need two agents")
	}
	return &Engine{
		Board:  game.NewBoard(),
		agents: map[game.Cell]Agent{game.Max: maxAgent, game.Min: minAgent},
	}
}

// Run plays plies alternately until a win or a full board and returns the
// outcome; Empty means a draw. Invalid moves are re-requested: they can
// only come from boundary input, a search agent always picks from
// LegalMoves.
func (e *Engine) Run() (game.Cell, error) {
	turn := game.Min
	for e.Board.Winner() == game.Empty && !e.Board.IsFull() {
		if err := e.playPly(turn); err != nil {
			return game.Empty, err
		}
		turn = -turn
	}

	winner := e.Board.Winner()
	log.Info().Msgf("game over: %s", Outcome(winner))
	return winner, nil
}

func (e *Engine) playPly(turn game.Cell) error {
	agent := e.agents[turn]
	for rejections := 0; rejections < maxRejections; rejections++ {
		column, err := agent.FindMove(e.Board)
		if err == nil {
			var row int
			var board game.Board
			board, row, err = e.Board.Place(column, turn)
			if err == nil {
				e.Board = board
				log.Info().Msgf("%s played column %d (row %d)", turn, column, row)
				return nil
			}
		}
		if !errors.Is(err, game.ErrInvalidMove) {
			return err
		}
		log.Warn().Msgf("%s: move rejected: %v", turn, err)
	}
	return fmt.Errorf("%s: %d invalid moves in a row", turn, maxRejections)
}

// Outcome renders a terminal winner value for logs and the console.
func Outcome(winner game.Cell) string {
	switch winner {
	case game.Max:
		return "Max wins"
	case game.Min:
		return "Min wins"
	default:
		return "draw"
	}
}
