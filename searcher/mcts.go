package searcher

import (
	"math"
	"slices"
	"time"

	"connectfour/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS picks moves for Max by Monte Carlo Tree Search. Each decision grows
// a fresh tree for a fixed number of iterations, then the tree is
// discarded; no state survives between calls. The search is synchronous
// and single-threaded, its latency is proportional to the iteration
// budget.
type MCTS struct {
	iterations  int
	exploration float64
	rng         *rand.Rand
	metrics     MetricsCollector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithExploration overrides the UCB1 exploration weight.
func WithExploration(weight float64) Option {
	return func(m *MCTS) {
		m.exploration = weight
	}
}

// WithRand supplies the random source. Seed it for reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 {
		panic("Must specify search iterations")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindBestMove runs the configured number of iterations from board and
// returns the column Max should play. The final pick compares root
// children by average score (exploration weight 0), not by visit count.
func (m *MCTS) FindBestMove(board game.Board) int {
	m.metrics.Start()
	root := newNode(nil, board)

	m.search(root)

	best := m.pickChild(root, 0)
	log.Debug().Msgf("move values: %v", rootValues(root))
	return root.moves[best]
}

// Metrics reports statistics for the latest search. Zero unless the
// searcher was built with WithMetrics.
func (m *MCTS) Metrics() SearchMetrics {
	return m.metrics.Complete()
}

// search runs one selection/expansion/rollout/backpropagation pass per
// iteration.
func (m *MCTS) search(root *node) {
	for i := 0; i < m.iterations; i++ {
		leaf, turn := m.selectAndExpand(root)
		winner := m.rollout(leaf.board, turn)
		backup(leaf, turn, outcome(winner))
		m.metrics.AddIteration()
	}
}

// selectAndExpand descends from the root until it reaches a terminal board
// or a node with an untried move, expanding in the latter case. It returns
// the node the rollout starts from and the turn marker at that node; the
// marker starts at Max and flips at every ply.
func (m *MCTS) selectAndExpand(root *node) (*node, game.Cell) {
	current := root
	turn := game.Max
	for current.board.Winner() == game.Empty && !current.board.IsFull() {
		if !current.fullyExpanded() {
			return m.expand(current, turn), -turn
		}
		current = current.children[m.pickChild(current, m.exploration)]
		turn = -turn
	}
	return current, turn
}

// expand attaches a child for the first legal move not yet explored,
// scanning columns left to right.
func (m *MCTS) expand(n *node, player game.Cell) *node {
	for _, move := range n.board.LegalMoves() {
		if slices.Contains(n.moves, move) {
			continue
		}
		board, _, err := n.board.Place(move, player)
		if err != nil {
			panic("searcher: legal move failed to apply: " + err.Error())
		}
		return n.addChild(board, move)
	}
	panic("searcher: expand on a fully expanded node")
}

// pickChild returns the index of the child maximizing
// score/visits + weight*sqrt(ln(2*visits)/childVisits), breaking ties
// uniformly at random. Weight 0 reduces this to the plain average, which
// is how the final move is chosen.
func (m *MCTS) pickChild(n *node, weight float64) int {
	if len(n.children) == 0 {
		panic("searcher: node has no children")
	}

	bestScore := math.Inf(-1)
	var best []int
	for i, child := range n.children {
		score := child.score/float64(child.visits) +
			weight*math.Sqrt(math.Log(2*float64(n.visits))/float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = append(best[:0], i)
		} else if score == bestScore {
			best = append(best, i)
		}
	}
	return pickUniform(m.rng, best)
}

// rollout plays uniformly random legal moves from board, starting with
// turn, until a winner appears or the board fills up.
func (m *MCTS) rollout(board game.Board, turn game.Cell) game.Cell {
	plies := 0
	for board.Winner() == game.Empty && !board.IsFull() {
		move := pickUniform(m.rng, board.LegalMoves())
		board, _, _ = board.Place(move, turn)
		turn = -turn
		plies++
	}
	m.metrics.AddRollout(plies)
	return board.Winner()
}

// backup walks parent references up to the root. The marker negates at
// every step so each node accumulates the result from its own
// perspective. An explicit loop, not recursion: stack depth stays flat no
// matter how deep the tree is.
func backup(n *node, turn game.Cell, result float64) {
	for ; n != nil; n = n.parent {
		n.recordOutcome(float64(-turn) * result)
		turn = -turn
	}
}

// rootValues lists the average score per explored root move, for debug
// logging.
func rootValues(root *node) []float64 {
	values := make([]float64, len(root.children))
	for i, child := range root.children {
		values[i] = child.score / float64(child.visits)
	}
	return values
}
