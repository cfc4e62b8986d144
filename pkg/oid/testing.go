package oid

import "testing"

// UseNext makes the next jobs receive the given identifiers, in order.
// The unique generator is restored when the test ends.
func UseNext(t *testing.T, oids ...string) {
	generator = NewSuiteGenerator(oids...)
	t.Cleanup(Reset)
}

// UseSequence numbers jobs 1, 2, 3... (zero-padded) so that walk order can be asserted.
func UseSequence(t *testing.T) {
	generator = NewSequenceGenerator()
	t.Cleanup(Reset)
}
