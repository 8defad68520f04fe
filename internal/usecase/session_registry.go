package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"delivery_cart/internal/domain/cart"
	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/domain/site"
	"delivery_cart/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrRegistryClosed   = errors.New("session registry closed")
)

const (
	defaultSaveTimeout = 5 * time.Second
	defaultIdleTimeout = 30 * time.Minute
	minSweepInterval   = time.Second
)

// Session is one visitor's cart and delivery context.
//
// Every cart mutation runs under mu. The site context locks itself, since
// its poller writes from another goroutine, but location mutations also take
// mu so that snapshots stay consistent.
type Session struct {
	ID     string
	Cart   *cart.Store
	Site   *site.Context
	Poller *site.StatusPoller

	mu         sync.Mutex
	version    int64
	closed     bool
	saves      chan entities.SessionState
	flushed    chan struct{}
	lastAccess atomic.Int64
}

// RegistryConfig tunes the sessions built by a registry. Zero values fall
// back to defaults.
type RegistryConfig struct {
	PollInterval time.Duration
	SaveTimeout  time.Duration
	// IdleTimeout evicts sessions nobody touched for that long. They restore
	// from the repository on the next Open.
	IdleTimeout time.Duration
	// Dispatcher launches site-change status refreshes; nil runs each on its
	// own goroutine.
	Dispatcher func(func())
	Now        func() time.Time
}

// SessionRegistry is the composition root of the per-visitor stores.
type SessionRegistry struct {
	repo    interfaces.ISessionStateRepository
	backend interfaces.ISiteBackend
	logger  *zap.Logger
	cfg     RegistryConfig

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	closed   bool
	sessions map[string]*Session
	retiring map[string]chan struct{}
	loads    singleflight.Group
	workers  sync.WaitGroup
}

func NewSessionRegistry(repo interfaces.ISessionStateRepository, backend interfaces.ISiteBackend, logger *zap.Logger, cfg RegistryConfig) *SessionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = defaultSaveTimeout
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &SessionRegistry{
		repo:     repo,
		backend:  backend,
		logger:   logger,
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*Session),
		retiring: make(map[string]chan struct{}),
	}
	r.workers.Add(1)
	go r.sweepLoop()
	return r
}

// Create starts a fresh session on the default site and persists it once.
func (r *SessionRegistry) Create(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	s := r.build(id, cart.NewStore(), site.NewContext(r.backend, r.logger.Named("site")))

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	r.touch(s)
	r.sessions[id] = s
	r.start(s)
	r.mu.Unlock()

	s.mu.Lock()
	r.persistLocked(s)
	s.mu.Unlock()

	r.logger.Info("session created", zap.String("session_id", id))
	return s, nil
}

// Open returns the live session for id, loading and restoring it from the
// repository on first use. Concurrent opens of the same id share one load.
func (r *SessionRegistry) Open(ctx context.Context, id string) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	if ok {
		r.touch(s)
	}
	closed := r.closed
	r.mu.RUnlock()
	if ok {
		return s, nil
	}
	if closed {
		return nil, ErrRegistryClosed
	}

	v, err, _ := r.loads.Do(id, func() (interface{}, error) {
		return r.load(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

func (r *SessionRegistry) load(ctx context.Context, id string) (*Session, error) {
	r.mu.RLock()
	if s, ok := r.sessions[id]; ok {
		r.touch(s)
		r.mu.RUnlock()
		return s, nil
	}
	pending := r.retiring[id]
	r.mu.RUnlock()

	// An evicted session's last save must land before it is read back.
	if pending != nil {
		select {
		case <-pending:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	state, err := r.repo.Load(ctx, id)
	if err != nil {
		r.logger.Error("session load failed", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}
	if state.ID == "" {
		return nil, ErrSessionNotFound
	}

	c, sc := RestoreSnapshot(state, r.backend, r.logger.Named("site"))
	s := r.build(id, c, sc)
	s.version = state.Version

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRegistryClosed
	}
	if existing, ok := r.sessions[id]; ok {
		r.touch(existing)
		return existing, nil
	}
	r.touch(s)
	r.sessions[id] = s
	r.start(s)

	r.logger.Info("session restored", zap.String("session_id", id), zap.Int("items", len(state.Cart)))
	return s, nil
}

func (r *SessionRegistry) build(id string, c *cart.Store, sc *site.Context) *Session {
	opts := []site.PollerOption{site.WithDispatcher(r.cfg.Dispatcher)}
	if r.cfg.PollInterval > 0 {
		opts = append(opts, site.WithPollInterval(r.cfg.PollInterval))
	}
	return &Session{
		ID:      id,
		Cart:    c,
		Site:    sc,
		Poller:  site.NewStatusPoller(sc, r.backend, r.logger.Named("site.status"), opts...),
		saves:   make(chan entities.SessionState, 1),
		flushed: make(chan struct{}),
	}
}

// start launches the poller and save worker of s. Caller holds r.mu.
func (r *SessionRegistry) start(s *Session) {
	r.workers.Add(1)
	go r.saveLoop(s)
	s.Poller.Start(r.ctx)
}

func (r *SessionRegistry) saveLoop(s *Session) {
	defer r.workers.Done()
	defer close(s.flushed)
	for state := range s.saves {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.SaveTimeout)
		if err := r.repo.Save(ctx, state); err != nil {
			r.logger.Warn("session save failed",
				zap.String("session_id", state.ID),
				zap.Int64("version", state.Version),
				zap.Error(err))
		}
		cancel()
	}
}

// Update runs fn under the session lock and persists the session when fn
// reports a change.
func (r *SessionRegistry) Update(s *Session, fn func(s *Session) bool) {
	r.touch(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn(s) {
		r.persistLocked(s)
	}
}

// View runs fn under the session lock without persisting.
func (r *SessionRegistry) View(s *Session, fn func(s *Session)) {
	r.touch(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Persist queues a snapshot of s for saving.
func (r *SessionRegistry) Persist(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.persistLocked(s)
}

// persistLocked replaces any queued snapshot with a fresh one. Caller holds
// s.mu, which makes it the only sender on s.saves.
func (r *SessionRegistry) persistLocked(s *Session) {
	if s.closed {
		r.logger.Warn("dropping save of a retired session", zap.String("session_id", s.ID))
		return
	}
	s.version++
	state := TakeSnapshot(s.ID, s.version, s.Cart, s.Site)
	select {
	case <-s.saves:
	default:
	}
	s.saves <- state
}

func (r *SessionRegistry) touch(s *Session) {
	s.lastAccess.Store(r.cfg.Now().UnixNano())
}

// EvictIdle retires every session untouched for IdleTimeout: its poller is
// stopped, its queued save is flushed and it leaves the map. Lookups touch
// sessions under r.mu, so a session just handed out by Open is never idle.
func (r *SessionRegistry) EvictIdle() int {
	cutoff := r.cfg.Now().Add(-r.cfg.IdleTimeout).UnixNano()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}
	var idle []*Session
	for id, s := range r.sessions {
		if s.lastAccess.Load() < cutoff {
			idle = append(idle, s)
			delete(r.sessions, id)
			r.retiring[id] = s.flushed
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		r.retire(s)
		<-s.flushed
		r.mu.Lock()
		if r.retiring[s.ID] == s.flushed {
			delete(r.retiring, s.ID)
		}
		r.mu.Unlock()
	}
	if len(idle) > 0 {
		r.logger.Info("idle sessions evicted", zap.Int("sessions", len(idle)))
	}
	return len(idle)
}

func (r *SessionRegistry) sweepLoop() {
	defer r.workers.Done()
	every := r.cfg.IdleTimeout / 2
	if every < minSweepInterval {
		every = minSweepInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.EvictIdle()
		}
	}
}

// retire stops the poller of s and closes its save queue; the save worker
// drains what is left and exits.
func (r *SessionRegistry) retire(s *Session) {
	s.Poller.Stop()
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.saves)
	}
	s.mu.Unlock()
}

// Close stops every poller and waits for queued saves to finish.
func (r *SessionRegistry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	r.cancel()
	for _, s := range sessions {
		r.retire(s)
	}
	r.workers.Wait()
	r.logger.Info("session registry closed", zap.Int("sessions", len(sessions)))
}
