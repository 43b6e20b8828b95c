package segment

import "container/heap"

// phraseQueue is a max-priority queue of Phrases keyed by Score, built on
// container/heap. Tie order between equal scores is arbitrary and callers
// must not depend on it.
type phraseQueue struct {
	items []Phrase
}

func newPhraseQueue() *phraseQueue {
	pq := &phraseQueue{}
	heap.Init(pq)
	return pq
}

func (pq *phraseQueue) push(p Phrase) {
	heap.Push(pq, p)
}

// pop removes and returns the highest-scoring Phrase. Callers must check
// len() first.
func (pq *phraseQueue) pop() Phrase {
	return heap.Pop(pq).(Phrase)
}

func (pq *phraseQueue) len() int {
	return len(pq.items)
}

// snapshot returns the queue's current contents without mutating it, for
// debug logging.
func (pq *phraseQueue) snapshot() []Phrase {
	out := make([]Phrase, len(pq.items))
	copy(out, pq.items)
	return out
}

// heap.Interface implementation.

func (pq *phraseQueue) Len() int { return len(pq.items) }

func (pq *phraseQueue) Less(i, j int) bool {
	// container/heap implements a min-heap; negate the comparison to get
	// a max-priority queue keyed on Score.
	return pq.items[i].Score > pq.items[j].Score
}

func (pq *phraseQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

func (pq *phraseQueue) Push(x any) {
	pq.items = append(pq.items, x.(Phrase))
}

func (pq *phraseQueue) Pop() any {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}
