// Package topk selects the k entries with the largest values without sorting
// the whole input.
package topk

import (
	"cmp"
	"container/heap"
)

// Entry is a key paired with the value it is ranked by.
type Entry[K comparable, V cmp.Ordered] struct {
	Key   K
	Value V
}

// minHeap keeps the smallest value at index 0.
type minHeap[K comparable, V cmp.Ordered] []Entry[K, V]

func (h minHeap[K, V]) Len() int           { return len(h) }
func (h minHeap[K, V]) Less(i, j int) bool { return cmp.Less(h[i].Value, h[j].Value) }
func (h minHeap[K, V]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap[K, V]) Push(x any) {
	*h = append(*h, x.(Entry[K, V]))
}

func (h *minHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Selector holds at most k candidates: the entries with the largest values
// offered so far.
//
// A new entry replaces the current minimum only when its value is strictly
// greater, so among equal values the entries offered first are kept. Which of
// them is kept therefore depends on the order of Offer calls, and the order of
// equal values inside Result is not specified.
type Selector[K comparable, V cmp.Ordered] struct {
	k int
	h minHeap[K, V]
}

// New returns a Selector for the k largest entries. k <= 0 selects nothing.
func New[K comparable, V cmp.Ordered](k int) *Selector[K, V] {
	return newSelector[K, V](k, 0)
}

func newSelector[K comparable, V cmp.Ordered](k, capacity int) *Selector[K, V] {
	if k < 0 {
		k = 0
	}
	return &Selector[K, V]{k: k, h: make(minHeap[K, V], 0, capacity)}
}

// Offer considers the entry and reports whether it became a candidate.
func (s *Selector[K, V]) Offer(key K, value V) bool {
	if s.k == 0 {
		return false
	}
	e := Entry[K, V]{Key: key, Value: value}
	if len(s.h) < s.k {
		heap.Push(&s.h, e)
		return true
	}
	if cmp.Compare(value, s.h[0].Value) <= 0 {
		return false
	}
	s.h[0] = e
	heap.Fix(&s.h, 0)
	return true
}

// Min returns the candidate that would be evicted next.
func (s *Selector[K, V]) Min() (Entry[K, V], bool) {
	if len(s.h) == 0 {
		return Entry[K, V]{}, false
	}
	return s.h[0], true
}

// Len returns the number of candidates.
func (s *Selector[K, V]) Len() int {
	return len(s.h)
}

// Result drains the candidates and returns them ordered by value, largest first.
// The selector is empty afterwards and may be reused.
func (s *Selector[K, V]) Result() []Entry[K, V] {
	res := make([]Entry[K, V], len(s.h))
	for i := len(res) - 1; i >= 0; i-- {
		res[i] = heap.Pop(&s.h).(Entry[K, V])
	}
	return res
}

// Select returns up to k entries of m with the largest values, largest first.
// Map iteration order is random, so when several keys share the boundary value
// any of them may be returned.
func Select[K comparable, V cmp.Ordered](m map[K]V, k int) []Entry[K, V] {
	if k <= 0 {
		return []Entry[K, V]{}
	}
	s := newSelector[K, V](k, min(k, len(m)))
	for key, value := range m {
		s.Offer(key, value)
	}
	return s.Result()
}

// SelectTopK returns the k most frequent tokens, most frequent first.
func SelectTopK(frequencies map[string]int, k int) []Entry[string, int] {
	return Select(frequencies, k)
}
