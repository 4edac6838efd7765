// Package versioned provides Sequence, an ordered container whose every edit
// is recorded as an immutable snapshot of the whole sequence.
//
// A cursor selects the visible snapshot. Undo and Redo only move the cursor;
// they never change recorded snapshots:
//
//	s := versioned.New[int]()
//	s.Append(10)
//	s.Append(20)
//	s.Undo()           // current: [10]
//	s.Redo()           // current: [10 20]
//
// # Branch discard
//
// Editing while the cursor is behind the newest snapshot first drops every
// snapshot after the cursor. At most one redo branch exists at a time:
//
//	s.Undo()           // current: [10]
//	s.PushFront(1)     // current: [1 10], the [10 20] snapshot is gone
//	s.Redo()           // ErrNoMoreRedo
//
// # Error policy
//
// Get rejects out-of-range indexes with an *IndexError and Redo at the newest
// snapshot returns ErrNoMoreRedo. Erase past the end and Undo at the initial
// snapshot are silent no-ops that record nothing.
//
// Every edit copies the current sequence. Memory grows with the number of
// edits times the sequence length.
package versioned
