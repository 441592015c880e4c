package balancer

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthChecker polls every backend on a fixed interval. A transport error
// or a 5xx marks the backend unhealthy; any other status marks it healthy.
type HealthChecker struct {
	pool     *Pool
	client   *http.Client
	interval time.Duration
	log      *zap.Logger
}

func NewHealthChecker(pool *Pool, interval time.Duration, client *http.Client, log *zap.Logger) *HealthChecker {
	if client == nil {
		client = &http.Client{Timeout: interval}
	}

	return &HealthChecker{
		pool:     pool,
		client:   client,
		interval: interval,
		log:      log,
	}
}

// Run starts one polling goroutine per backend and blocks until ctx is done
// and all of them have returned.
func (hc *HealthChecker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, b := range hc.pool.Backends() {
		wg.Add(1)
		go func(b *Backend) {
			defer wg.Done()

			ticker := time.NewTicker(hc.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					hc.Check(ctx, b)
				}
			}
		}(b)
	}

	wg.Wait()
}

// Check probes b once and records the result.
func (hc *HealthChecker) Check(ctx context.Context, b *Backend) {
	healthy := hc.probe(ctx, b)

	if was := b.Healthy(); was != healthy {
		hc.log.Info("backend health changed",
			zap.String("backend", b.Name),
			zap.String("url", b.URL.String()),
			zap.Bool("healthy", healthy),
		)
	}
	b.SetHealthy(healthy)
}

func (hc *HealthChecker) probe(ctx context.Context, b *Backend) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.URL.String(), nil)
	if err != nil {
		return false
	}

	res, err := hc.client.Do(req)
	if err != nil {
		hc.log.Debug("health check failed", zap.String("backend", b.Name), zap.Error(err))
		return false
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	return res.StatusCode < http.StatusInternalServerError
}
