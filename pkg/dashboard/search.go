package dashboard

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is how long typing must pause before the term is
// committed.
const DefaultDebounceDelay = 500 * time.Millisecond

// SearchInput debounces keystrokes into search commits. Each Type call
// restarts the timer; Enter commits the pending term immediately and cancels
// the timer. Committing an unchanged term is a no-op.
type SearchInput struct {
	mu        sync.Mutex
	commit    func(term string)
	delay     time.Duration
	timer     *time.Timer
	pending   string
	committed string
}

type SearchOption func(*SearchInput)

// WithDebounceDelay overrides the debounce interval, mainly for tests.
func WithDebounceDelay(delay time.Duration) SearchOption {
	return func(s *SearchInput) {
		s.delay = delay
	}
}

func NewSearchInput(commit func(term string), opts ...SearchOption) *SearchInput {
	input := &SearchInput{
		commit: commit,
		delay:  DefaultDebounceDelay,
	}

	for _, opt := range opts {
		opt(input)
	}

	return input
}

// Type records the current contents of the input box and schedules a commit
// after the debounce delay.
func (s *SearchInput) Type(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = term
	s.stopTimerLocked()

	if term == s.committed {
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.commitLocked()
	})
}

// Enter commits the pending term at once, bypassing the debounce.
func (s *SearchInput) Enter() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.commitLocked()
}

// Clear empties the input and commits immediately.
func (s *SearchInput) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = ""
	s.stopTimerLocked()
	s.commitLocked()
}

// Stop cancels any scheduled commit without firing it.
func (s *SearchInput) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *SearchInput) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *SearchInput) commitLocked() {
	if s.pending == s.committed {
		return
	}
	s.committed = s.pending
	s.commit(s.pending)
}
