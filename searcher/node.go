package searcher

import (
	"connect4/game"
)

const noParent int32 = -1

// node is one position of the search tree. value accumulates rollout
// results from the perspective of mover, the side whose move led here.
type node struct {
	board    game.Board
	mover    game.Side
	move     int
	parent   int32
	visits   int
	value    float64
	untried  []int
	children []int32
	terminal bool
}

// tree stores nodes in one slice and links them by index. It is owned by a
// single search call.
type tree struct {
	nodes []node
}

// newTree roots a tree at board. mover is the side that made the last
// move, the opponent of the searching side.
func newTree(board game.Board, mover game.Side) *tree {
	t := &tree{nodes: make([]node, 0, 1024)}
	t.add(board, mover, -1, noParent)
	return t
}

func (t *tree) add(board game.Board, mover game.Side, move int, parent int32) int32 {
	n := node{
		board:  board,
		mover:  mover,
		move:   move,
		parent: parent,
	}
	if board.IsTerminal() {
		n.terminal = true
	} else {
		n.untried = game.OrderByCenter(board.LegalMoves())
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

func (t *tree) size() int {
	return len(t.nodes)
}

// toMove is the side choosing a move at node id
func (t *tree) toMove(id int32) game.Side {
	return t.nodes[id].mover.Opponent()
}

func (t *tree) fullyExpanded(id int32) bool {
	return len(t.nodes[id].untried) == 0
}

func (t *tree) leaf(id int32) bool {
	return len(t.nodes[id].children) == 0
}

// expand plays move from node id and links the new child
func (t *tree) expand(id int32, move int) (int32, error) {
	parent := &t.nodes[id]
	board := parent.board
	mover := parent.mover.Opponent()
	if _, err := board.Play(move, mover); err != nil {
		return noParent, err
	}

	for i, m := range parent.untried {
		if m == move {
			parent.untried = append(parent.untried[:i], parent.untried[i+1:]...)
			break
		}
	}

	child := t.add(board, mover, move, id)
	// append may have moved the slice
	t.nodes[id].children = append(t.nodes[id].children, child)
	return child, nil
}

// selectChild returns the child of id with the highest UCB1 score, the
// first one on ties
func (t *tree) selectChild(id int32, c float64) int32 {
	parent := &t.nodes[id]
	u := newUCB1(c, parent.visits)
	best, bestScore := noParent, 0.0
	for _, child := range parent.children {
		n := &t.nodes[child]
		score := u.evaluate(n.value, n.visits)
		if best == noParent || score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

// backup adds result, seen from root's side, to every node from id up to
// the root
func (t *tree) backup(id int32, root game.Side, result float64) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		if n.mover == root {
			n.value += result
		} else {
			n.value += 1 - result
		}
		id = n.parent
	}
}

// mostVisited returns the root child with the most visits, or noParent when
// the root has no children
func (t *tree) mostVisited() int32 {
	best, visits := noParent, -1
	for _, child := range t.root().children {
		if n := &t.nodes[child]; n.visits > visits {
			best, visits = child, n.visits
		}
	}
	return best
}

// Policy returns the visit share of each root move
func (t *tree) Policy() map[int]float64 {
	policy := make(map[int]float64)
	total := 0
	for _, child := range t.root().children {
		total += t.nodes[child].visits
	}
	if total == 0 {
		return policy
	}
	for _, child := range t.root().children {
		n := &t.nodes[child]
		policy[n.move] = float64(n.visits) / float64(total)
	}
	return policy
}
