package summarizer

import (
	"container/heap"
	"sort"
)

// SentenceScore is one distinct sentence with its accumulated score. Index is
// the position of the sentence's first occurrence among distinct sentences.
type SentenceScore struct {
	Index    int
	Sentence string
	Score    int
}

// Result holds the tables built for one document.
type Result struct {
	Frequencies map[string]int
	Sentences   []SentenceScore
}

// Top selects the n best sentences. Higher scores win; equal scores go to the
// earlier sentence. n larger than the pool returns the whole pool.
func (r Result) Top(n int, order Order) []SentenceScore {
	if n <= 0 || len(r.Sentences) == 0 {
		return nil
	}
	if n > len(r.Sentences) {
		n = len(r.Sentences)
	}

	h := make(worstFirst, 0, n+1)
	for _, sc := range r.Sentences {
		if len(h) < n {
			heap.Push(&h, sc)
			continue
		}
		if outranks(sc, h[0]) {
			h[0] = sc
			heap.Fix(&h, 0)
		}
	}

	out := make([]SentenceScore, len(h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(SentenceScore)
	}

	if order == OrderByPosition {
		sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	}
	return out
}

func outranks(a, b SentenceScore) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Index < b.Index
}

// worstFirst is a heap whose root is the lowest-ranked selected sentence.
type worstFirst []SentenceScore

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return outranks(h[j], h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *worstFirst) Push(x any) { *h = append(*h, x.(SentenceScore)) }

func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
