// Package pqueue provides a generic binary min-heap keyed by item identity.
//
// What:
//
//   - Items are ordered by a float64 priority, smallest first.
//   - Equal priorities pop in insertion order (earlier Push wins), so a
//     search driven by the queue is deterministic.
//   - Each item has an identity key; at most one entry per key is queued.
//     Update (or a repeated Push) re-prioritises the existing entry in place
//     (decrease-key / increase-key) without changing its insertion rank.
//
// Complexity:
//
//   - Push, Pop, Update: O(log n).
//   - Peek, Len, Contains: O(1).
//
// The queue is not goroutine-safe.
package pqueue

import "container/heap"

// Queue is a min-priority queue of T keyed by K.
type Queue[T any, K comparable] struct {
	key   func(T) K
	h     entryHeap[T]
	index map[K]*entry[T]
	seq   uint64
}

// entry is one heap slot; pos is maintained by entryHeap.Swap.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
	pos      int
}

// New returns an empty queue using key to identify items. Panics on nil key.
func New[T any, K comparable](key func(T) K) *Queue[T, K] {
	if key == nil {
		panic("pqueue: New(nil key)")
	}
	return &Queue[T, K]{
		key:   key,
		index: make(map[K]*entry[T]),
	}
}

// Len returns the number of queued items.
func (q *Queue[T, K]) Len() int { return len(q.h) }

// Contains reports whether an item with key k is queued.
func (q *Queue[T, K]) Contains(k K) bool {
	_, ok := q.index[k]
	return ok
}

// Push queues item with priority. If an item with the same key is already
// queued, its priority is replaced instead (see Update).
func (q *Queue[T, K]) Push(item T, priority float64) {
	if q.Update(item, priority) {
		return
	}
	e := &entry[T]{item: item, priority: priority, seq: q.seq}
	q.seq++
	heap.Push(&q.h, e)
	q.index[q.key(item)] = e
}

// Update re-prioritises the queued entry sharing item's key and stores item
// in it. Returns false when no such entry is queued.
func (q *Queue[T, K]) Update(item T, priority float64) bool {
	e, ok := q.index[q.key(item)]
	if !ok {
		return false
	}
	e.item = item
	e.priority = priority
	heap.Fix(&q.h, e.pos)
	return true
}

// Pop removes and returns the lowest-priority item. ok is false when empty.
func (q *Queue[T, K]) Pop() (item T, ok bool) {
	if len(q.h) == 0 {
		return item, false
	}
	e := heap.Pop(&q.h).(*entry[T])
	delete(q.index, q.key(e.item))
	return e.item, true
}

// Peek returns the lowest-priority item and its priority without removing it.
func (q *Queue[T, K]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	return q.h[0].item, q.h[0].priority, true
}

// entryHeap implements heap.Interface over *entry, ordered by
// (priority, seq) ascending.
type entryHeap[T any] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.pos = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // avoid memory leak
	e.pos = -1
	*h = old[:n-1]
	return e
}
