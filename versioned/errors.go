package versioned

import (
	"errors"
	"fmt"

	"github.com/kevinxiao27/revlist/ol"
)

// Errors returned by Sequence operations.
var (
	// ErrIndexOutOfRange indicates an element index outside the current snapshot.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoMoreRedo indicates the cursor is already at the newest snapshot.
	ErrNoMoreRedo = ol.ErrNoMoreRedo

	// ErrStepOutOfRange indicates a history step that was never recorded.
	ErrStepOutOfRange = errors.New("history step out of range")
)

// IndexError reports a Get outside the current snapshot. It matches
// ErrIndexOutOfRange under errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
