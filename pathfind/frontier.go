package pathfind

import "container/heap"

// frontierItem is one discovered-but-unsettled cell.
type frontierItem struct {
	idx  int // row-major cell index
	dist int // tentative distance, mirrors the cell's dist
	tie  int // secondary key chosen by the TieBreak policy
	pos  int // position inside the heap, maintained by Swap
}

// frontierPQ is an indexed min-heap ordered by (dist, tie).
// Unlike the lazy heap in a classic Dijkstra, every cell has at most one entry
// and a decrease is applied in place with heap.Fix, so Len is the exact
// frontier size.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].tie < pq[j].tie
}

func (pq frontierPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].pos = i
	pq[j].pos = j
}

func (pq *frontierPQ) Push(x any) {
	item := x.(*frontierItem)
	item.pos = len(*pq)
	*pq = append(*pq, item)
}

func (pq *frontierPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.pos = -1
	*pq = old[:n-1]

	return item
}

// frontier wraps the heap with a cell-index lookup.
type frontier struct {
	pq     frontierPQ
	byCell map[int]*frontierItem
	policy TieBreak
	seq    int
}

func newFrontier(policy TieBreak) *frontier {
	f := &frontier{
		pq:     make(frontierPQ, 0, 16),
		byCell: make(map[int]*frontierItem),
		policy: policy,
	}
	heap.Init(&f.pq)

	return f
}

func (f *frontier) Len() int { return f.pq.Len() }

// offer adds idx at dist, or lowers its distance if already present.
// An equal distance keeps the existing entry and its tie key.
// It reports whether idx was newly added and whether its distance changed.
func (f *frontier) offer(idx, dist int) (added, lowered bool) {
	if item, ok := f.byCell[idx]; ok {
		if dist < item.dist {
			item.dist = dist
			heap.Fix(&f.pq, item.pos)
			return false, true
		}
		return false, false
	}

	item := &frontierItem{idx: idx, dist: dist, tie: f.tieKey(idx)}
	heap.Push(&f.pq, item)
	f.byCell[idx] = item

	return true, false
}

// popMin removes and returns the cell with the smallest (dist, tie).
func (f *frontier) popMin() *frontierItem {
	item := heap.Pop(&f.pq).(*frontierItem)
	delete(f.byCell, item.idx)

	return item
}

func (f *frontier) tieKey(idx int) int {
	if f.policy == TieBreakInsertion {
		f.seq++
		return f.seq
	}
	// Row-major index orders by row, then column.
	return idx
}
