package dailyselect

import (
	"sync"
	"time"
)

// Selection is a memoized pick together with the key and index that produced it.
type Selection[T any] struct {
	DateKey string
	Index   int
	Item    T
}

// Memo caches the selection for the current date key and recomputes it only when the
// observed calendar date changes.
type Memo[T any] struct {
	mu         sync.Mutex
	candidates []T
	current    *Selection[T]
}

// NewMemo copies candidates; the memo never observes later mutations of the caller's slice.
func NewMemo[T any](candidates []T) (*Memo[T], error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidates
	}
	owned := make([]T, len(candidates))
	copy(owned, candidates)
	return &Memo[T]{candidates: owned}, nil
}

// Get returns the selection for the calendar date of now. The second result reports
// whether the date key changed since the previous call and a new selection was computed.
func (m *Memo[T]) Get(now time.Time) (Selection[T], bool) {
	key := DateKey(now)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.DateKey == key {
		return *m.current, false
	}

	// candidates is non-empty, checked in NewMemo
	item, index, _ := SelectIndexed(key, m.candidates)
	m.current = &Selection[T]{DateKey: key, Index: index, Item: item}
	return *m.current, true
}

// Len reports the number of candidates.
func (m *Memo[T]) Len() int {
	return len(m.candidates)
}
