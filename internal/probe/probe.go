// Package probe sends a burst of requests through the balancer and tallies
// which greeting server answered each one.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries a fresh UUID on every request. It is the header
// chi's RequestID middleware adopts, so the balancer logs the same ID.
var HeaderRequestID = middleware.RequestIDHeader

type Config struct {
	URL      string
	Requests int
	Delay    time.Duration
}

type Prober struct {
	cfg    Config
	client *http.Client
	out    io.Writer
	log    *zap.Logger
}

func New(cfg Config, client *http.Client, out io.Writer, log *zap.Logger) *Prober {
	if client == nil {
		client = http.DefaultClient
	}

	return &Prober{cfg: cfg, client: client, out: out, log: log}
}

// Run starts cfg.Requests requests, one every cfg.Delay, and waits for all
// of them. Failed requests are logged and left out of the stats.
func (p *Prober) Run(ctx context.Context) *Stats {
	stats := NewStats()

	var (
		wg    sync.WaitGroup
		outMu sync.Mutex
	)

	for i := 0; i < p.cfg.Requests; i++ {
		if i > 0 && p.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				wg.Wait()
				return stats
			case <-time.After(p.cfg.Delay):
			}
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			name, err := p.send(ctx)
			if err != nil {
				p.log.Warn("probe request failed", zap.Error(err))
				return
			}

			stats.Increment(name)
			outMu.Lock()
			fmt.Fprintf(p.out, "Request replied by: %s\n", name)
			outMu.Unlock()
		}()
	}

	wg.Wait()
	return stats
}

func (p *Prober) send(ctx context.Context) (string, error) {
	id := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", id, err)
	}
	req.Header.Set(HeaderRequestID, id)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("probe %s: read body: %w", id, err)
	}

	name := ExtractServerName(string(body))
	if name == "" {
		return "", fmt.Errorf("probe %s: no server name in %d response", id, resp.StatusCode)
	}

	return name, nil
}
