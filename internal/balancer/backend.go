package balancer

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sync"

	"hello-web/internal/config"
)

// Backend is one upstream greeting server. Active and Healthy are only
// touched under mu.
type Backend struct {
	Name string
	URL  *url.URL

	mu      sync.Mutex
	active  int
	healthy bool

	proxy *httputil.ReverseProxy
}

func NewBackend(cfg config.Backend) (*Backend, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(u)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		if dst, ok := r.Context().Value(proxyErrKey{}).(*error); ok {
			*dst = err
		}
	}

	return &Backend{
		Name:    cfg.Name,
		URL:     u,
		healthy: true,
		proxy:   proxy,
	}, nil
}

type proxyErrKey struct{}

func (b *Backend) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

func (b *Backend) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.healthy
}

func (b *Backend) SetHealthy(healthy bool) {
	b.mu.Lock()
	b.healthy = healthy
	b.mu.Unlock()
}

func (b *Backend) acquire() {
	b.mu.Lock()
	b.active++
	b.mu.Unlock()
}

func (b *Backend) release() {
	b.mu.Lock()
	b.active--
	b.mu.Unlock()
}

// serve proxies r to the backend and frees the active slot Pool.Next
// reserved for it. The returned error is whatever the proxy transport
// reported, if anything.
func (b *Backend) serve(w http.ResponseWriter, r *http.Request) error {
	defer b.release()

	var proxyErr error
	b.proxy.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), proxyErrKey{}, &proxyErr)))

	return proxyErr
}
