package versioned

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/kevinxiao27/revlist/ol"
)

// Snapshot is a read-only view of the sequence at one point in history.
// The zero value is an empty snapshot.
type Snapshot[T any] struct {
	op    ol.OpType
	elems []T
}

func snapshotOf[T any](e ol.Entry[[]T]) Snapshot[T] {
	return Snapshot[T]{op: e.Op, elems: e.State}
}

// Op names the operation that produced the snapshot.
func (s Snapshot[T]) Op() ol.OpType {
	return s.op
}

func (s Snapshot[T]) Len() int {
	return len(s.elems)
}

// At returns the element at index i. It panics when i is out of range, like
// a slice index; use Sequence.Get for a checked lookup.
func (s Snapshot[T]) At(i int) T {
	return s.elems[i]
}

func (s Snapshot[T]) All() iter.Seq[T] {
	return slices.Values(s.elems)
}

// Slice returns a copy of the elements.
func (s Snapshot[T]) Slice() []T {
	out := make([]T, len(s.elems))
	copy(out, s.elems)
	return out
}

// String renders the elements space separated, e.g. "1 10 20".
func (s Snapshot[T]) String() string {
	parts := make([]string, len(s.elems))
	for i, v := range s.elems {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// Equal reports whether a and b hold the same elements in the same order.
// Operation labels are ignored.
func Equal[T comparable](a, b Snapshot[T]) bool {
	return slices.Equal(a.elems, b.elems)
}
