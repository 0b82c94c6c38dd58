// SPDX-License-Identifier: MIT

package qem

import (
	"container/heap"

	"github.com/katalvlaran/qemesh/halfedge"
)

// compactSlack is the number of stale heap entries tolerated on top of the
// live ones before the heap is rebuilt.
const compactSlack = 64

// costItem is one heap entry. seq is unique per insertion; an entry is live
// while costIndex.live[edge].seq equals it.
type costItem struct {
	edge halfedge.EdgeID
	cost float64
	seq  uint64
}

// costPQ is a min-heap of costItem ordered by (cost, seq).
type costPQ []costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(costItem)) }

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// costIndex orders live edges by cost with lazy deletion: remove only drops
// the side-table entry and peek discards stale tops. Equal costs pop in
// insertion order.
type costIndex struct {
	pq   costPQ
	live map[halfedge.EdgeID]costItem
	seq  uint64
}

func newCostIndex(capacity int) *costIndex {
	return &costIndex{
		pq:   make(costPQ, 0, capacity),
		live: make(map[halfedge.EdgeID]costItem, capacity),
	}
}

// insert makes (e, cost) the live entry of e, superseding any previous one.
func (ix *costIndex) insert(e halfedge.EdgeID, cost float64) {
	ix.seq++
	it := costItem{edge: e, cost: cost, seq: ix.seq}
	ix.live[e] = it
	heap.Push(&ix.pq, it)
	ix.maybeCompact()
}

// remove forgets e. It reports whether e had a live entry.
func (ix *costIndex) remove(e halfedge.EdgeID) bool {
	if _, ok := ix.live[e]; !ok {
		return false
	}
	delete(ix.live, e)
	ix.maybeCompact()
	return true
}

// peek returns the live entry with the smallest cost without removing it.
func (ix *costIndex) peek() (halfedge.EdgeID, float64, bool) {
	for len(ix.pq) > 0 {
		top := ix.pq[0]
		if cur, ok := ix.live[top.edge]; ok && cur.seq == top.seq {
			return top.edge, top.cost, true
		}
		heap.Pop(&ix.pq)
	}

	return halfedge.InvalidEdge, 0, false
}

// cost returns the live cost of e.
func (ix *costIndex) cost(e halfedge.EdgeID) (float64, bool) {
	it, ok := ix.live[e]
	return it.cost, ok
}

// len is the number of live entries.
func (ix *costIndex) len() int { return len(ix.live) }

// maybeCompact rebuilds the heap from live entries once stale ones dominate.
// Order is unaffected because (cost, seq) is unique per entry.
func (ix *costIndex) maybeCompact() {
	if len(ix.pq) <= 2*len(ix.live)+compactSlack {
		return
	}
	ix.pq = ix.pq[:0]
	for _, it := range ix.live {
		ix.pq = append(ix.pq, it)
	}
	heap.Init(&ix.pq)
}
