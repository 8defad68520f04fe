package site

import (
	"context"
	"strings"
	"sync"
	"time"

	"delivery_cart/internal/domain/entities"

	"go.uber.org/zap"
)

const DefaultPollInterval = 30 * time.Second

// StatusPoller keeps the site status of a Context fresh.
//
// Start is one-shot: the first call fetches immediately and schedules a
// fetch every interval until Stop; later calls are no-ops, including after
// Stop. Every refresh is stamped with a sequence number and a completion
// older than the last applied one is discarded.
//
// Site-change refreshes run on the poller's run context. Stop cancels them,
// waits for the ones in flight and ignores later site changes.
type StatusPoller struct {
	site     *Context
	backend  Backend
	logger   *zap.Logger
	interval time.Duration
	dispatch func(func())

	mu       sync.Mutex
	started  bool
	stopped  bool
	runCtx   context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	inflight sync.WaitGroup
	issued   uint64
	applied  uint64
}

type PollerOption func(*StatusPoller)

func WithPollInterval(d time.Duration) PollerOption {
	return func(p *StatusPoller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithDispatcher sets how site-change refreshes are launched. The default
// runs each one on its own goroutine.
func WithDispatcher(fn func(func())) PollerOption {
	return func(p *StatusPoller) {
		if fn != nil {
			p.dispatch = fn
		}
	}
}

// NewStatusPoller wires the poller to the context so that a change of the
// selected site id triggers a refresh for the new id.
func NewStatusPoller(site *Context, backend Backend, logger *zap.Logger, opts ...PollerOption) *StatusPoller {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &StatusPoller{
		site:     site,
		backend:  backend,
		logger:   logger,
		interval: DefaultPollInterval,
		dispatch: func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(p)
	}
	site.OnSiteChange(p.onSiteChange)
	return p
}

func (p *StatusPoller) onSiteChange(siteID string) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	ctx := p.runCtx
	if ctx == nil {
		ctx = context.Background()
	}
	p.inflight.Add(1)
	p.mu.Unlock()

	p.dispatch(func() {
		defer p.inflight.Done()
		p.Refresh(ctx, siteID)
	})
}

// Start begins polling. It reports false when the poller was already started.
func (p *StatusPoller) Start(ctx context.Context) bool {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return false
	}
	p.started = true
	ctx, cancel := context.WithCancel(ctx)
	p.runCtx = ctx
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go p.run(ctx, done)
	return true
}

func (p *StatusPoller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	p.Refresh(ctx, "")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx, "")
		}
	}
}

// Stop cancels the recurring task and any site-change refresh, and waits
// for them to exit. It is terminal.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	p.inflight.Wait()
}

func (p *StatusPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

func (p *StatusPoller) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

// Refresh fetches the status of explicitSiteID, or of the context's current
// site when empty. A failure resets the status to unknown and keeps the last
// known networks.
func (p *StatusPoller) Refresh(ctx context.Context, explicitSiteID string) {
	siteID := strings.TrimSpace(explicitSiteID)
	if siteID == "" {
		siteID = p.site.SiteID()
	}
	if siteID == "" || p.backend == nil {
		return
	}

	p.mu.Lock()
	p.issued++
	seq := p.issued
	p.mu.Unlock()

	resp, err := p.backend.FetchSiteStatus(ctx, siteID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	if seq <= p.applied {
		p.logger.Debug("discarding stale status response", zap.String("site_id", siteID), zap.Uint64("seq", seq))
		return
	}
	p.applied = seq

	prev := p.site.Status()
	if err != nil {
		p.logger.Warn("site status fetch failed", zap.String("site_id", siteID), zap.Error(err))
		p.site.setStatus(entities.SiteStatus{
			State:    entities.StatusUnknown,
			Networks: prev.Networks,
			SiteID:   siteID,
		})
		return
	}

	networks := resp.Networks
	if len(networks) == 0 || string(networks) == "null" {
		networks = prev.Networks
	}
	next := entities.SiteStatus{
		State:           entities.NormalizeStatus(resp.Status),
		NextOpeningTime: resp.NextOpeningTime,
		Networks:        networks,
		SiteID:          siteID,
	}
	p.site.setStatus(next)
	p.logger.Debug("site status refreshed", zap.String("site_id", siteID), zap.String("status", string(next.State)))
}
