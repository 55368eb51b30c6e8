package searcher

import "connectfour/game"

// node is one state in the search tree. children[i] is the subtree reached
// by playing moves[i]; the two slices grow in lockstep. parent is followed
// only by the backpropagation walk and never owns anything.
type node struct {
	parent   *node
	board    game.Board
	moves    []int
	children []*node
	visits   int
	score    float64
}

// newNode starts the visit count at 1, not 0: the UCB score divides by
// child visits, so a zero count would blow up on the first selection.
func newNode(parent *node, board game.Board) *node {
	return &node{parent: parent, board: board, visits: 1}
}

// addChild records move as explored and attaches the resulting board as a
// new child.
func (n *node) addChild(board game.Board, move int) *node {
	child := newNode(n, board)
	n.moves = append(n.moves, move)
	n.children = append(n.children, child)
	return child
}

// recordOutcome folds one simulation result into the node statistics.
func (n *node) recordOutcome(delta float64) {
	n.score += delta
	n.visits++
}

// fullyExpanded reports whether every legal move has an explored child.
func (n *node) fullyExpanded() bool {
	return len(n.children) == len(n.board.LegalMoves())
}
