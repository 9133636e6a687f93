package pdb

import "container/heap"

// item is one (stateId, cost) entry in a min-priority queue, ordered by
// cost ascending. Both the forward exploration and the backward Dijkstra
// use the same lazy-decrease-key discipline as the teacher's dijkstra
// package: stale entries are pushed rather than updated in place, and
// ignored on pop once their state is closed.
type item struct {
	id   int
	cost float64
}

type priorityQueue []*item

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

func newPriorityQueue() *priorityQueue {
	pq := make(priorityQueue, 0)
	heap.Init(&pq)
	return &pq
}

func (pq *priorityQueue) push(id int, cost float64) {
	heap.Push(pq, &item{id: id, cost: cost})
}

func (pq *priorityQueue) pop() (int, float64, bool) {
	if pq.Len() == 0 {
		return 0, 0, false
	}
	it := heap.Pop(pq).(*item)
	return it.id, it.cost, true
}
