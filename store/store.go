package store

import (
	"sync"

	"github.com/lpp-lab/coilcalc/nodeout"
)

// Snapshot is a committed copy of {name -> Node Output}.
type Snapshot map[string]nodeout.Output

// Store holds the most recent complete output mapping plus a bounded FIFO
// ring of up to capacity prior snapshots. All mutation is guarded by mu.
type Store struct {
	mu sync.Mutex

	capacity int
	current  map[string]nodeout.Output
	stale    map[string]bool
	history  []Snapshot // oldest first; len never exceeds capacity
}

// New returns an empty Store with the given history ring capacity.
func New(capacity int) *Store {
	return &Store{
		capacity: capacity,
		current:  make(map[string]nodeout.Output),
		stale:    make(map[string]bool),
	}
}

// Put stores out under name, transitioning name from Stale to fresh.
func (s *Store) Put(name string, out nodeout.Output) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[name] = out
	s.stale[name] = false
}

// Invalidate marks every name in names Stale. It is idempotent: marking an
// already-Stale name Stale again has no additional effect.
func (s *Store) Invalidate(names map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range names {
		s.stale[name] = true
	}
}

// IsStale reports whether name is Stale. A name never seen by Put or
// Invalidate is treated as Stale (the Uninstalled and Stale states are
// indistinguishable from the store's point of view).
func (s *Store) IsStale(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh, ok := s.stale[name]
	return !ok || fresh
}

// Current returns a read-only copy of the current mapping, restricted to
// tracked. It fails ErrNotReady if any name in tracked is Stale.
func (s *Store) Current(tracked []string) (map[string]nodeout.Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range tracked {
		if stale, ok := s.stale[name]; !ok || stale {
			return nil, ErrNotReady
		}
	}
	out := make(map[string]nodeout.Output, len(tracked))
	for _, name := range tracked {
		out[name] = s.current[name]
	}
	return out, nil
}

// Commit copies the current mapping (restricted to tracked) into history as
// a new snapshot, evicting the oldest entry if the ring is already at
// capacity. It fails ErrNotReady if any name in tracked is Stale.
func (s *Store) Commit(tracked []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range tracked {
		if stale, ok := s.stale[name]; !ok || stale {
			return ErrNotReady
		}
	}

	snap := make(Snapshot, len(tracked))
	for _, name := range tracked {
		snap[name] = s.current[name]
	}

	if s.capacity <= 0 {
		return nil
	}
	if len(s.history) >= s.capacity {
		s.history = s.history[1:]
	}
	s.history = append(s.history, snap)
	return nil
}

// History returns the snapshot at logical ring position index (0 is the
// oldest retained snapshot), or ErrOutOfRange.
func (s *Store) History(index int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.history) {
		return nil, ErrOutOfRange
	}
	return s.history[index], nil
}

// HistorySize reports how many snapshots are currently retained.
func (s *Store) HistorySize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// ClearCurrent drops the current output mapping and marks every
// previously-known name Stale again. History is untouched.
func (s *Store) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = make(map[string]nodeout.Output)
	for name := range s.stale {
		s.stale[name] = true
	}
}

// Clear drops all current outputs and all history.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = make(map[string]nodeout.Output)
	s.stale = make(map[string]bool)
	s.history = nil
}
