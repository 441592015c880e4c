package balancer

import (
	"fmt"
	"sync"

	"hello-web/internal/config"
)

type Pool struct {
	backends []*Backend

	// serialises Next so two callers never both claim the same idle backend
	mu sync.Mutex
}

func NewPool(cfgs []config.Backend) (*Pool, error) {
	backends := make([]*Backend, 0, len(cfgs))
	for _, c := range cfgs {
		b, err := NewBackend(c)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %w", c.Name, err)
		}
		backends = append(backends, b)
	}

	return &Pool{backends: backends}, nil
}

func (p *Pool) Backends() []*Backend {
	return p.backends
}

// Next returns the healthy backend with the fewest active connections,
// preferring earlier backends on ties, with one active slot already reserved
// on it. The caller must release that slot; serve does. It returns nil when
// none is healthy.
func (p *Pool) Next() *Backend {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best *Backend
	bestActive := -1

	for _, b := range p.backends {
		b.mu.Lock()
		if b.healthy && (bestActive == -1 || b.active < bestActive) {
			best = b
			bestActive = b.active
		}
		b.mu.Unlock()
	}

	if best != nil {
		best.acquire()
	}
	return best
}
