package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"connectfour/engine"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Iteration budgets per difficulty tier.
var thinkingLevels = map[string]int{
	"beginner":     400,
	"intermediate": 2500,
	"hard":         5000,
}

func main() {
	level := flag.String("level", "intermediate", "AI level: beginner, intermediate or hard")
	games := flag.Int("games", 5, "number of demo games")
	play := flag.Bool("play", false, "play against the AI on stdin instead of running demo games")
	debug := flag.Bool("debug", false, "log per-search move values")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	iterations, ok := thinkingLevels[*level]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown level %q\n", *level)
		os.Exit(1)
	}

	if *play {
		playInteractive(iterations)
		return
	}
	runDemoGames(iterations, *games)
}

// playInteractive runs a single human-vs-AI game on the terminal. The
// human opens and plays Min.
func playInteractive(iterations int) {
	ai := engine.NewSearchAgent(searcher.NewMCTS(
		searcher.WithIterations(iterations),
	))
	human := engine.NewInputAgent(os.Stdin, os.Stdout)
	e := engine.New(ai, human)

	winner, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Println(e.Board)
	switch winner {
	case game.Max:
		fmt.Println("The AI wins!")
	case game.Min:
		fmt.Println("You win!")
	default:
		fmt.Println("Draw.")
	}
}

// runDemoGames plays the searcher against a random baseline and prints a
// small scoreboard.
func runDemoGames(iterations, games int) {
	fmt.Printf("Running %d games: MCTS (%d iterations) vs random...\n", games, iterations)

	wins := map[game.Cell]int{}
	for i := 0; i < games; i++ {
		rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		mcts := searcher.NewMCTS(
			searcher.WithIterations(iterations),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		)
		e := engine.New(engine.NewSearchAgent(mcts), engine.NewRandomAgent(rng))

		winner, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("demo game failed")
		}
		wins[winner]++

		m := mcts.Metrics()
		fmt.Printf("Game %d over! %s (last search: %d iterations in %s)\n",
			i+1, engine.Outcome(winner), m.Iterations, m.Duration)
	}

	fmt.Printf("Finished: MCTS %d, random %d, draws %d\n",
		wins[game.Max], wins[game.Min], wins[game.Empty])
}
