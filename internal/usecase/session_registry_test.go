package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/usecase/interfaces"
	mock_interfaces "delivery_cart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestRegistry(repo interfaces.ISessionStateRepository, backend interfaces.ISiteBackend) *SessionRegistry {
	return NewSessionRegistry(repo, backend, nil, RegistryConfig{
		PollInterval: time.Hour,
		SaveTimeout:  time.Second,
		Dispatcher:   func(fn func()) { fn() },
	})
}

// saveRecorder collects the states passed to a mocked Save.
type saveRecorder struct {
	mu     sync.Mutex
	states []entities.SessionState
}

func (r *saveRecorder) save(_ context.Context, state entities.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
	return nil
}

func (r *saveRecorder) all() []entities.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.SessionState(nil), r.states...)
}

func TestSessionRegistry_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
	rec := &saveRecorder{}
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(rec.save).Times(1)

	reg := newTestRegistry(repo, nil)
	s, err := reg.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	reg.Close()

	if s.ID == "" {
		t.Fatalf("expected generated id")
	}
	saved := rec.all()
	if len(saved) != 1 || saved[0].ID != s.ID || saved[0].Version != 1 {
		t.Fatalf("unexpected saves %+v", saved)
	}
	if saved[0].Location == nil || saved[0].Location.Site.Name != "PRINCIPAL" {
		t.Fatalf("expected default site, got %+v", saved[0].Location)
	}

	if _, err := reg.Create(context.Background()); !errors.Is(err, ErrRegistryClosed) {
		t.Fatalf("expected ErrRegistryClosed, got %v", err)
	}
}

func TestSessionRegistry_Open(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		reg := newTestRegistry(nil, nil)
		defer reg.Close()
		if _, err := reg.Open(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
		reg := newTestRegistry(repo, nil)
		defer reg.Close()

		repo.EXPECT().Load(gomock.Any(), "missing").Return(entities.SessionState{}, nil)

		if _, err := reg.Open(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
		reg := newTestRegistry(repo, nil)
		defer reg.Close()

		repo.EXPECT().Load(gomock.Any(), "s-1").Return(entities.SessionState{}, errors.New("db"))

		if _, err := reg.Open(context.Background(), "s-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("restores once and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
		reg := newTestRegistry(repo, nil)
		defer reg.Close()

		repo.EXPECT().Load(gomock.Any(), "s-1").Return(entities.SessionState{
			ID:      "s-1",
			Version: 9,
			Cart:    []entities.LineItem{{ProductID: "p1", UnitPrice: 1000, Quantity: 2}},
		}, nil).Times(1)

		var wg sync.WaitGroup
		got := make([]*Session, 8)
		for i := range got {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := reg.Open(context.Background(), "s-1")
				if err != nil {
					t.Errorf("unexpected err: %v", err)
					return
				}
				got[i] = s
			}(i)
		}
		wg.Wait()

		for _, s := range got {
			if s != got[0] {
				t.Fatalf("expected one shared session")
			}
		}
		if got[0].Cart.TotalItemCount() != 2 {
			t.Fatalf("expected restored cart")
		}
	})
}

func TestSessionRegistry_PersistOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
	rec := &saveRecorder{}
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(rec.save).AnyTimes()

	reg := newTestRegistry(repo, nil)
	s, err := reg.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 0; i < 50; i++ {
		reg.Update(s, func(s *Session) bool {
			s.Cart.AddItem(entities.Product{ID: "p1", GeneralPrice: 100}, 1, nil)
			return true
		})
	}
	reg.Close()

	saved := rec.all()
	if len(saved) == 0 {
		t.Fatalf("expected saves")
	}
	for i := 1; i < len(saved); i++ {
		if saved[i].Version <= saved[i-1].Version {
			t.Fatalf("saves out of order: %d after %d", saved[i].Version, saved[i-1].Version)
		}
	}
	last := saved[len(saved)-1]
	if last.Version != 51 || last.Cart[0].Quantity != 50 {
		t.Fatalf("expected latest snapshot saved, got version %d", last.Version)
	}
}

func TestSessionRegistry_SaveFailureIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("throttled")).AnyTimes()

	reg := newTestRegistry(repo, nil)
	s, err := reg.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	reg.Update(s, func(s *Session) bool {
		s.Cart.SetOrderNotes("ring twice")
		return true
	})
	reg.Close()

	if s.Cart.OrderNotes() != "ring twice" {
		t.Fatalf("in-memory state must survive failed saves")
	}
}

func TestSessionRegistry_UpdateWithoutChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
	rec := &saveRecorder{}
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(rec.save).AnyTimes()

	reg := newTestRegistry(repo, nil)
	s, _ := reg.Create(context.Background())
	reg.Update(s, func(s *Session) bool { return false })
	reg.Close()

	saved := rec.all()
	if len(saved) != 1 || saved[0].Version != 1 {
		t.Fatalf("expected only the create save, got %+v", saved)
	}
}

func TestSessionRegistry_EvictIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)
	rec := &saveRecorder{}
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(rec.save).AnyTimes()
	repo.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string) (entities.SessionState, error) {
			saved := rec.all()
			return saved[len(saved)-1], nil
		},
	).Times(1)

	var now atomic.Int64
	now.Store(time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC).UnixNano())
	advance := func(d time.Duration) { now.Add(int64(d)) }

	reg := NewSessionRegistry(repo, nil, nil, RegistryConfig{
		PollInterval: time.Hour,
		SaveTimeout:  time.Second,
		IdleTimeout:  time.Minute,
		Dispatcher:   func(fn func()) { fn() },
		Now:          func() time.Time { return time.Unix(0, now.Load()) },
	})
	defer reg.Close()

	s, err := reg.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	reg.Update(s, func(s *Session) bool {
		s.Cart.AddItem(entities.Product{ID: "p1", GeneralPrice: 100}, 3, nil)
		return true
	})

	advance(30 * time.Second)
	if n := reg.EvictIdle(); n != 0 {
		t.Fatalf("expected no eviction before the idle timeout, got %d", n)
	}
	if _, err := reg.Open(context.Background(), s.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	advance(45 * time.Second)
	if n := reg.EvictIdle(); n != 0 {
		t.Fatalf("expected open to keep the session alive, got %d evicted", n)
	}

	advance(2 * time.Minute)
	if n := reg.EvictIdle(); n != 1 {
		t.Fatalf("expected one eviction, got %d", n)
	}
	if !s.Poller.Stopped() {
		t.Fatalf("expected the evicted session's poller to stop")
	}
	s.mu.Lock()
	retired := s.closed
	s.mu.Unlock()
	if !retired {
		t.Fatalf("expected the evicted session's save queue to close")
	}

	restored, err := reg.Open(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if restored == s {
		t.Fatalf("expected a freshly restored session")
	}
	if restored.Cart.TotalItemCount() != 3 {
		t.Fatalf("expected the cart restored from the last save, got %d items", restored.Cart.TotalItemCount())
	}
	if restored.Poller.Stopped() || !restored.Poller.Running() {
		t.Fatalf("expected the restored session to poll again")
	}
}
