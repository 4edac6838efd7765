package ol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func states[S any](l *Log[S]) []S {
	var out []S
	for _, e := range l.Entries() {
		out = append(out, e.State)
	}
	return out
}

func TestNewLog(t *testing.T) {
	l := NewLog("")

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, Entry[string]{Op: Init, State: ""}, l.Current())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
}

func TestCommitAdvancesCursor(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)
	l.Commit(Append, 2)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Cursor())
	assert.Equal(t, 2, l.Current().State)
	assert.Equal(t, Append, l.Current().Op)
}

func TestUndoAtFloorIsNoop(t *testing.T) {
	l := NewLog(0)
	for i := 0; i < 3; i++ {
		assert.False(t, l.Undo())
	}
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, 1, l.Len())
}

func TestRedoAtTip(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)

	err := l.Redo()
	require.ErrorIs(t, err, ErrNoMoreRedo)
	assert.Equal(t, 1, l.Cursor())
	assert.Equal(t, 2, l.Len())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)
	l.Commit(Append, 2)

	require.True(t, l.Undo())
	require.True(t, l.Undo())
	assert.Equal(t, 0, l.Current().State)
	assert.True(t, l.CanRedo())

	require.NoError(t, l.Redo())
	assert.Equal(t, 1, l.Current().State)
	require.NoError(t, l.Redo())
	assert.Equal(t, 2, l.Current().State)
	assert.ErrorIs(t, l.Redo(), ErrNoMoreRedo)
}

func TestCommitDiscardsBranch(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)
	l.Commit(Append, 2)
	l.Commit(Append, 3)
	l.Undo()
	l.Undo()

	l.Commit(Insert, 9)

	assert.Equal(t, []int{0, 1, 9}, states(l))
	assert.Equal(t, 2, l.Cursor())
	assert.ErrorIs(t, l.Redo(), ErrNoMoreRedo)
}

func TestEntriesArePointInTime(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)

	before := l.Entries()
	l.Commit(Append, 2)

	assert.Len(t, before, 2)
	assert.Equal(t, []int{0, 1, 2}, states(l))
}

func TestEntriesSurviveBranchDiscard(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)
	l.Commit(Append, 2)
	l.Undo()

	var seen []int
	for i, e := range l.Entries() {
		if i == 1 {
			l.Commit(Append, 7)
		}
		seen = append(seen, e.State)
	}

	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []int{0, 1, 7}, states(l))
}

func TestAt(t *testing.T) {
	l := NewLog("a")
	l.Commit(Append, "ab")

	e, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, "ab", e.State)

	_, ok = l.At(2)
	assert.False(t, ok)
	_, ok = l.At(-1)
	assert.False(t, ok)
}

func TestEntriesAppendDoesNotClobber(t *testing.T) {
	l := NewLog(0)
	l.Commit(Append, 1)

	entries := l.Entries()
	_ = append(entries, Entry[int]{Op: Append, State: 42})
	l.Commit(Append, 2)

	assert.Equal(t, []int{0, 1, 2}, states(l))
}
