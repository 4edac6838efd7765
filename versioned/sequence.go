package versioned

import (
	"iter"
	"slices"
	"sync"

	"github.com/kevinxiao27/revlist/ol"
)

// Sequence is an ordered container with linear undo/redo over full snapshots.
// It is safe for concurrent use; each method is one atomic state transition.
type Sequence[T any] struct {
	mu  sync.Mutex
	log *ol.Log[[]T]
}

// New returns a Sequence whose history holds only the initial empty snapshot.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{log: ol.NewLog([]T{})}
}

// Current returns the snapshot under the cursor.
func (s *Sequence[T]) Current() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.log.Current())
}

// edit applies fn to a copy of the current elements and commits the result.
func (s *Sequence[T]) edit(op ol.OpType, fn func(elems []T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(op, fn(s.currentCopyLocked()))
}

func (s *Sequence[T]) currentCopyLocked() []T {
	return slices.Clone(s.log.Current().State)
}

func (s *Sequence[T]) commitLocked(op ol.OpType, elems []T) {
	s.log.Commit(op, slices.Clip(elems))
}

// Insert places v before pos. Positions past the end append; negative
// positions insert at the front. A snapshot is always recorded.
func (s *Sequence[T]) Insert(pos int, v T) {
	s.edit(ol.Insert, func(elems []T) []T {
		return slices.Insert(elems, min(max(pos, 0), len(elems)), v)
	})
}

// Erase removes the element at pos. When pos is outside the current snapshot
// nothing is recorded and the cursor does not move.
func (s *Sequence[T]) Erase(pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elems := s.currentCopyLocked()
	if pos < 0 || pos >= len(elems) {
		return
	}
	s.commitLocked(ol.Erase, slices.Delete(elems, pos, pos+1))
}

func (s *Sequence[T]) Append(v T) {
	s.edit(ol.Append, func(elems []T) []T {
		return append(elems, v)
	})
}

func (s *Sequence[T]) PushBack(v T) {
	s.edit(ol.PushBack, func(elems []T) []T {
		return append(elems, v)
	})
}

func (s *Sequence[T]) PushFront(v T) {
	s.edit(ol.PushFront, func(elems []T) []T {
		return slices.Insert(elems, 0, v)
	})
}

// PopBack drops the last element. On an empty sequence it still records a
// snapshot, identical to the current one.
func (s *Sequence[T]) PopBack() {
	s.edit(ol.PopBack, func(elems []T) []T {
		if len(elems) > 0 {
			elems = elems[:len(elems)-1]
		}
		return elems
	})
}

// PopFront drops the first element, recording a snapshot even when empty.
func (s *Sequence[T]) PopFront() {
	s.edit(ol.PopFront, func(elems []T) []T {
		if len(elems) > 0 {
			elems = slices.Delete(elems, 0, 1)
		}
		return elems
	})
}

// Get returns the n-th element of the current snapshot.
func (s *Sequence[T]) Get(n int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elems := s.log.Current().State
	if n < 0 || n >= len(elems) {
		var zero T
		return zero, &IndexError{Index: n, Len: len(elems)}
	}
	return elems[n], nil
}

// Undo moves the cursor one snapshot back. At the initial snapshot it does
// nothing.
func (s *Sequence[T]) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Undo()
}

// Redo moves the cursor one snapshot forward, or returns ErrNoMoreRedo when
// it is already at the newest.
func (s *Sequence[T]) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Redo()
}

// History yields every recorded snapshot from oldest to newest, regardless of
// the cursor. Each range is a fresh traversal of the history as it stood when
// the range began; later edits never disturb a traversal in progress.
func (s *Sequence[T]) History() iter.Seq[Snapshot[T]] {
	return func(yield func(Snapshot[T]) bool) {
		for _, snap := range s.Steps() {
			if !yield(snap) {
				return
			}
		}
	}
}

// Steps is History with each snapshot's step index.
func (s *Sequence[T]) Steps() iter.Seq2[int, Snapshot[T]] {
	return func(yield func(int, Snapshot[T]) bool) {
		s.mu.Lock()
		entries := s.log.Entries()
		s.mu.Unlock()

		for i, e := range entries {
			if !yield(i, snapshotOf(e)) {
				return
			}
		}
	}
}

// Len returns the number of recorded snapshots, including the initial one.
func (s *Sequence[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Len()
}

// Cursor returns the step index of the current snapshot.
func (s *Sequence[T]) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Cursor()
}

func (s *Sequence[T]) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.CanUndo()
}

func (s *Sequence[T]) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.CanRedo()
}
