package probe

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Stats counts how many replies each server name produced.
type Stats struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewStats() *Stats {
	return &Stats{counts: make(map[string]int)}
}

func (s *Stats) Increment(server string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[server]++
}

// Snapshot returns a copy of the counters.
func (s *Stats) Snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// Print writes the counters sorted by server name.
func (s *Stats) Print(w io.Writer) error {
	snap := s.Snapshot()

	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintln(w, "Server Statistics:"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s: %d requests\n", name, snap[name]); err != nil {
			return err
		}
	}
	return nil
}
