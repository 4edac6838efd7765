package ol

import "errors"

type OpType string // label naming the edit that produced an entry

const (
	Init      OpType = "init"
	Insert    OpType = "insert"
	Erase     OpType = "erase"
	Append    OpType = "append"
	PushFront OpType = "push_front"
	PushBack  OpType = "push_back"
	PopFront  OpType = "pop_front"
	PopBack   OpType = "pop_back"
)

var ErrNoMoreRedo = errors.New("no more redo: already at newest state")

// Entry is one recorded state. Op is informational only.
type Entry[S any] struct {
	Op    OpType
	State S
}

// Log is a linear history of states with a cursor naming the visible one.
// entries is never empty and cursor is always a valid index into it.
// Log does no locking; owners serialize access.
type Log[S any] struct {
	entries []Entry[S]
	cursor  int
}
