package searcher

import "connect4/game"

// Bound tells how a stored score relates to the true minimax value
type Bound int8

const (
	Exact Bound = iota
	Lower       // true value is at least the score
	Upper       // true value is at most the score
)

type entry struct {
	score int
	bound Bound
}

// TranspositionTable caches alpha-beta scores by board content. The ply
// count is implied by the content, so a position always sits at the same
// remaining depth within one search. Tables are not shared across searches.
type TranspositionTable struct {
	entries map[game.Fingerprint]entry
	probes  int
	hits    int
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[game.Fingerprint]entry)}
}

// Probe returns the stored score and its bound kind
func (t *TranspositionTable) Probe(fp game.Fingerprint) (int, Bound, bool) {
	t.probes++
	e, ok := t.entries[fp]
	if ok {
		t.hits++
	}
	return e.score, e.bound, ok
}

// Lookup returns the stored score regardless of its bound kind
func (t *TranspositionTable) Lookup(fp game.Fingerprint) (int, bool) {
	e, ok := t.entries[fp]
	return e.score, ok
}

func (t *TranspositionTable) Store(fp game.Fingerprint, score int, b Bound) {
	t.entries[fp] = entry{score: score, bound: b}
}

func (t *TranspositionTable) Len() int {
	return len(t.entries)
}

func (t *TranspositionTable) Hits() int {
	return t.hits
}

func (t *TranspositionTable) Probes() int {
	return t.probes
}

func (t *TranspositionTable) Clear() {
	clear(t.entries)
	t.probes = 0
	t.hits = 0
}
