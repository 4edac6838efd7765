package ol

import "slices"

func NewLog[S any](initial S) *Log[S] {
	return &Log[S]{
		entries: []Entry[S]{{Op: Init, State: initial}},
		cursor:  0,
	}
}

func (l *Log[S]) Current() Entry[S] {
	return l.entries[l.cursor]
}

// Commit records state as the newest entry and moves the cursor onto it.
// Entries past the cursor (left behind by Undo) are discarded first.
func (l *Log[S]) Commit(op OpType, state S) {
	if l.cursor+1 != len(l.entries) {
		// clip so the append below reallocates; running traversals keep the old branch
		l.entries = slices.Clip(l.entries[:l.cursor+1])
	}

	l.entries = append(l.entries, Entry[S]{Op: op, State: state})
	l.cursor = len(l.entries) - 1
}

// Undo steps the cursor back one entry. At the initial entry it does nothing
// and reports false.
func (l *Log[S]) Undo() bool {
	if l.cursor > 0 {
		l.cursor--
		return true
	}
	return false
}

func (l *Log[S]) Redo() error {
	if l.cursor+1 < len(l.entries) {
		l.cursor++
		return nil
	}
	return ErrNoMoreRedo
}

func (l *Log[S]) Len() int {
	return len(l.entries)
}

func (l *Log[S]) Cursor() int {
	return l.cursor
}

func (l *Log[S]) CanUndo() bool {
	return l.cursor > 0
}

func (l *Log[S]) CanRedo() bool {
	return l.cursor+1 < len(l.entries)
}

func (l *Log[S]) At(i int) (Entry[S], bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry[S]{}, false
	}
	return l.entries[i], true
}

// Entries returns the history, oldest first, as a clipped slice sharing
// storage with the log. Later commits never change a returned slice, not even
// when they discard a branch, and appending to it cannot clobber the log.
// Callers must not write elements.
func (l *Log[S]) Entries() []Entry[S] {
	return slices.Clip(l.entries)
}
