package versioned

import "fmt"

// At returns the snapshot recorded at step without moving the cursor.
func (s *Sequence[T]) At(step int) (Snapshot[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.log.At(step)
	if !ok {
		return Snapshot[T]{}, fmt.Errorf("step %d of %d: %w", step, s.log.Len(), ErrStepOutOfRange)
	}
	return snapshotOf(e), nil
}
