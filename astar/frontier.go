package astar

import "github.com/katalvlaran/npuzzle/board"

// entry is one frontier record: a board with its path cost g, heuristic
// estimate h, and priority f = g + h.
type entry struct {
	f, h, g int
	b       board.Board
}

// frontier is a min-heap of entries under the exact ordering (f, then h,
// then g) ascending. The tie-break is a contract, not a convenience: it
// pins down the expansion order so two runs on the same board report
// identical Expanded and MaxFrontier statistics.
//
// Duplicates are handled lazily: finding a cheaper path to a board pushes a
// new entry, and the stale one is skipped when popped (its g no longer
// matches the recorded best cost).
type frontier []*entry

// Len returns the number of live-or-stale entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, breaking ties by h, then by g, all ascending.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].g < pq[j].g
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
