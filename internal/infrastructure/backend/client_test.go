package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_FetchNeighborhood(t *testing.T) {
	t.Run("lenient decoding", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/neighborhood/7/" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"neighborhood_id": 7, "name": "Granada", "delivery_price": "3500"}`))
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL + "/"}, nil)
		n, err := c.FetchNeighborhood(context.Background(), "7")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if n.ID != "7" || n.Name != "Granada" || n.DeliveryPrice != 3500 {
			t.Fatalf("unexpected neighborhood %+v", n)
		}
	})

	t.Run("null price becomes zero", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": "9", "name": null, "delivery_price": null}`))
		}))
		defer srv.Close()

		n, err := NewClient(Config{BaseURL: srv.URL}, nil).FetchNeighborhood(context.Background(), "9")
		if err != nil || n.ID != "9" || n.DeliveryPrice != 0 {
			t.Fatalf("unexpected result %+v %v", n, err)
		}
	})

	t.Run("non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewClient(Config{BaseURL: srv.URL}, nil).FetchNeighborhood(context.Background(), "7")
		if !errors.Is(err, ErrBackendStatus) {
			t.Fatalf("expected ErrBackendStatus, got %v", err)
		}
		var se *StatusError
		if !errors.As(err, &se) || se.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %v", err)
		}
	})

	t.Run("bad body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		if _, err := NewClient(Config{BaseURL: srv.URL}, nil).FetchNeighborhood(context.Background(), "7"); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestClient_FetchSiteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/1/status" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status": "close", "next_opening_time": "2026-10-15 11:00:00", "networks": {"instagram": "@salchi"}}`))
	}))
	defer srv.Close()

	st, err := NewClient(Config{BaseURL: srv.URL}, nil).FetchSiteStatus(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.Status != "close" {
		t.Fatalf("unexpected raw status %q", st.Status)
	}
	want := time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC)
	if st.NextOpeningTime == nil || !st.NextOpeningTime.Equal(want) {
		t.Fatalf("unexpected opening time %v", st.NextOpeningTime)
	}
	if string(st.Networks) != `{"instagram": "@salchi"}` {
		t.Fatalf("unexpected networks %s", st.Networks)
	}
}

func TestClient_CollapsesConcurrentRequests(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		_, _ = w.Write([]byte(`{"status": "open"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.FetchSiteStatus(context.Background(), "1"); err != nil {
				t.Errorf("unexpected err: %v", err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected one upstream request, got %d", got)
	}
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	for i := 0; i < 8; i++ {
		_, _ = c.FetchSiteStatus(context.Background(), "1")
	}
	if got := atomic.LoadInt32(&hits); got != 5 {
		t.Fatalf("expected breaker to stop after 5 failures, got %d hits", got)
	}
}

func TestClient_CallerCancellationIsNotShared(t *testing.T) {
	var hits int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"status": "open"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.FetchSiteStatus(ctxA, "1")
		errA <- err
	}()
	<-arrived

	type result struct {
		status string
		err    error
	}
	resB := make(chan result, 1)
	go func() {
		st, err := c.FetchSiteStatus(context.Background(), "1")
		resB <- result{st.Status, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	if err := <-errA; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected caller A to see its own cancellation, got %v", err)
	}

	close(release)
	b := <-resB
	if b.err != nil || b.status != "open" {
		t.Fatalf("expected caller B to get the shared response, got %+v", b)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected one upstream request, got %d", got)
	}
}

func TestClient_CancelledCallersDoNotOpenBreaker(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"status": "closed"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 6; i++ {
		if _, err := c.FetchSiteStatus(cancelled, "1"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	}

	st, err := c.FetchSiteStatus(context.Background(), "1")
	if err != nil {
		t.Fatalf("healthy backend must stay reachable, got %v", err)
	}
	if st.Status != "closed" {
		t.Fatalf("unexpected status %+v", st)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected one upstream request, got %d", got)
	}
}

func TestClient_SharedRequestIsBoundedByTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 30 * time.Millisecond}, nil)
	start := time.Now()
	if _, err := c.FetchSiteStatus(context.Background(), "1"); err == nil {
		t.Fatalf("expected a timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("shared request outlived the client timeout: %v", elapsed)
	}
}
