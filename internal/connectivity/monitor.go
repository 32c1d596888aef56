package connectivity

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultProbeURL = "https://www.gstatic.com/generate_204"
	probeTimeout    = 5 * time.Second
	probeAttempts   = 3
)

// Checker reports whether the network is currently reachable. Consumers take
// this interface so tests can inject a fake.
type Checker interface {
	Online() bool
}

// Monitor owns the process-wide connectivity flag. It probes a well-known
// endpoint on an interval, stores the result as a whole-value replacement and
// notifies subscribers on transitions. There is exactly one writer (the Run
// loop); everything else only reads.
type Monitor struct {
	probeURL   string
	interval   time.Duration
	httpClient *http.Client

	mu     sync.RWMutex
	online bool
	subs   []chan bool
}

// NewMonitor creates a connectivity monitor probing probeURL every interval.
// The monitor starts offline until the first probe completes.
func NewMonitor(probeURL string, interval time.Duration) *Monitor {
	if probeURL == "" {
		probeURL = defaultProbeURL
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		probeURL:   probeURL,
		interval:   interval,
		httpClient: &http.Client{Timeout: probeTimeout},
	}
}

// Online returns the last observed connectivity state.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Subscribe returns a channel that receives the new state on every
// transition. Slow subscribers miss intermediate transitions rather than
// blocking the monitor.
func (m *Monitor) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Run probes until the context is cancelled. The first probe happens
// immediately so consumers do not wait a full interval for the initial state.
func (m *Monitor) Run(ctx context.Context) {
	m.setOnline(m.probe(ctx))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.setOnline(m.probe(ctx))
		}
	}
}

// probe attempts to reach the probe endpoint. A few quick retries smooth over
// transient blips so the flag only flips on sustained loss.
func (m *Monitor) probe(ctx context.Context) bool {
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.probeURL, nil)
			if err != nil {
				return fmt.Errorf("create probe request: %w", err)
			}
			resp, err := m.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("probe request: %w", err)
			}
			resp.Body.Close()
			if resp.StatusCode >= 500 {
				return fmt.Errorf("probe status: %d", resp.StatusCode)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(probeAttempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil && ctx.Err() == nil {
		log.Printf("[connectivity] probe failed: %v", err)
	}
	return err == nil
}

func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	subs := m.subs
	m.mu.Unlock()

	if !changed {
		return
	}

	log.Printf("[connectivity] state changed online=%t", online)
	for _, ch := range subs {
		select {
		case ch <- online:
		default:
		}
	}
}
