package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	run(&out)

	got := out.String()
	assert.Contains(t, got, "Step 0:\nStep 1: 10\nStep 2: 1 10\nStep 3: 1 10 20\nStep 4: 10 20\n")
	// the pop_front step is gone after undo + push_front
	assert.Contains(t, got, "Step 3: 1 10 20\nStep 4: 99 1 10 20\n")
	assert.Contains(t, got, "current 2nd element: 1\n")
	assert.Contains(t, got, "exception: index 5 out of range [0, 4)\n")
	// the dump shows the snapshot's label and elements
	assert.Contains(t, got, `"push_front"`)
	assert.Contains(t, got, "elems:")
}
