package logger

import (
	"sync"
	"sync/atomic"
)

// Threshold holds the minimum severity that is emitted.
// Reads are lock-free; scoped overrides form a stack.
type Threshold struct {
	level atomic.Int32

	mu     sync.Mutex
	scopes []*Scope
}

// Scope is a temporary threshold override created by Threshold.Push.
// Call Restore, usually with defer, to end it.
type Scope struct {
	t        *Threshold
	prev     Severity
	restored bool
}

// NewThreshold returns a threshold set to level.
func NewThreshold(level Severity) *Threshold {
	t := &Threshold{}
	t.level.Store(int32(level))
	return t
}

// Level returns the current minimum severity.
func (t *Threshold) Level() Severity {
	return Severity(t.level.Load())
}

// Set changes the minimum severity until changed again. Open scopes still
// restore the value they saved when they were pushed.
func (t *Threshold) Set(level Severity) {
	t.level.Store(int32(level))
}

// Enabled reports whether a message at level passes the threshold.
// Fatal always passes.
func (t *Threshold) Enabled(level Severity) bool {
	return level == Fatal || level >= t.Level()
}

// Push saves the current level and sets a new one.
func (t *Threshold) Push(level Severity) *Scope {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := &Scope{t: t, prev: t.Level()}
	t.scopes = append(t.scopes, s)
	t.level.Store(int32(level))
	return s
}

// Depth returns the number of open scopes.
func (t *Threshold) Depth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.scopes)
}

// Restore ends the scope. Calling it more than once is a no-op.
//
// Restoring the newest scope sets the level back to the value it saved.
// Restoring an older scope while newer ones are still open leaves the level
// alone and hands the saved value to the next newer scope.
func (s *Scope) Restore() {
	t := s.t
	t.mu.Lock()
	defer t.mu.Unlock()

	if s.restored {
		return
	}
	s.restored = true

	idx := -1
	for i, open := range t.scopes {
		if open == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx == len(t.scopes)-1 {
		t.level.Store(int32(s.prev))
		t.scopes[idx] = nil
		t.scopes = t.scopes[:idx]
		return
	}
	t.scopes[idx+1].prev = s.prev
	t.scopes = append(t.scopes[:idx], t.scopes[idx+1:]...)
}
