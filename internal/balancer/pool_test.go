package balancer

import (
	"sync"
	"testing"

	"hello-web/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, n int) *Pool {
	t.Helper()

	cfgs := make([]config.Backend, n)
	for i := range cfgs {
		cfgs[i] = config.Backend{Name: string(rune('a' + i)), URL: "http://localhost:1"}
	}

	p, err := NewPool(cfgs)
	require.NoError(t, err)
	return p
}

func TestNewPool(t *testing.T) {
	p, err := NewPool([]config.Backend{
		{Name: "server 1", URL: "http://localhost:9090"},
		{Name: "server 2", URL: "http://localhost:9091/base"},
	})
	require.NoError(t, err)
	require.Len(t, p.Backends(), 2)

	b := p.Backends()[1]
	assert.Equal(t, "server 2", b.Name)
	assert.Equal(t, "localhost:9091", b.URL.Host)
	assert.True(t, b.Healthy())
	assert.Equal(t, 0, b.Active())
}

func TestNewPool_BadURL(t *testing.T) {
	_, err := NewPool([]config.Backend{{Name: "broken", URL: "http://[::1"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `backend "broken"`)
}

func TestPool_Next(t *testing.T) {
	tests := []struct {
		name     string
		active   []int
		healthy  []bool
		expected int
	}{
		{name: "all idle picks first", active: []int{0, 0, 0}, healthy: []bool{true, true, true}, expected: 0},
		{name: "least active wins", active: []int{3, 1, 2}, healthy: []bool{true, true, true}, expected: 1},
		{name: "tie goes to earlier", active: []int{2, 1, 1}, healthy: []bool{true, true, true}, expected: 1},
		{name: "unhealthy skipped", active: []int{5, 0, 2}, healthy: []bool{true, false, true}, expected: 2},
		{name: "only one healthy", active: []int{0, 0, 9}, healthy: []bool{false, false, true}, expected: 2},
		{name: "none healthy", active: []int{0, 0, 0}, healthy: []bool{false, false, false}, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPool(t, len(tt.active))
			for i, b := range p.Backends() {
				for j := 0; j < tt.active[i]; j++ {
					b.acquire()
				}
				b.SetHealthy(tt.healthy[i])
			}

			got := p.Next()
			if tt.expected == -1 {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, p.Backends()[tt.expected], got)
		})
	}
}

func TestBackend_AcquireRelease(t *testing.T) {
	b := newTestPool(t, 1).Backends()[0]

	b.acquire()
	b.acquire()
	assert.Equal(t, 2, b.Active())

	b.release()
	assert.Equal(t, 1, b.Active())
}

func TestPool_NextReservesSlot(t *testing.T) {
	p := newTestPool(t, 2)

	first := p.Next()
	second := p.Next()

	assert.Same(t, p.Backends()[0], first)
	assert.Same(t, p.Backends()[1], second)
	assert.Equal(t, 1, first.Active())
	assert.Equal(t, 1, second.Active())
}

func TestPool_NextSpreadsConcurrentBurst(t *testing.T) {
	const n = 8
	p := newTestPool(t, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotNil(t, p.Next())
		}()
	}
	wg.Wait()

	for _, b := range p.Backends() {
		assert.Equal(t, 1, b.Active(), b.Name)
	}
}
