// Package backend is the HTTP client for the storefront backend.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/usecase/interfaces"
	"delivery_cart/pkg"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrBackendStatus = errors.New("unexpected backend status")

const defaultTimeout = 5 * time.Second

// Client reads neighborhoods and site status from the backend.
//
// Identical in-flight GETs are collapsed into one request, and every request
// runs through a circuit breaker so that a dead backend fails fast.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
	breaker *gobreaker.CircuitBreaker[[]byte]
	group   singleflight.Group
}

var _ interfaces.ISiteBackend = (*Client)(nil)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is then ignored.
	HTTPClient *http.Client
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    hc,
		logger:  logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "backend",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// A 4xx is the backend answering, not the backend failing. A
			// cancelled caller says nothing about the backend either.
			if errors.Is(err, context.Canceled) {
				return true
			}
			var se *StatusError
			if errors.As(err, &se) {
				return se.Code < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return c
}

// StatusError is returned for a non-2xx response. It matches ErrBackendStatus.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d from %s", ErrBackendStatus.Error(), e.Code, e.URL)
}

func (e *StatusError) Is(target error) bool { return target == ErrBackendStatus }

type neighborhoodResponse struct {
	ID             pkg.FlexString `json:"id"`
	NeighborhoodID pkg.FlexString `json:"neighborhood_id"`
	Name           pkg.FlexString `json:"name"`
	DeliveryPrice  pkg.FlexInt    `json:"delivery_price"`
}

func (r neighborhoodResponse) toEntity() entities.Neighborhood {
	id := r.NeighborhoodID.String()
	if id == "" {
		id = r.ID.String()
	}
	return entities.NewNeighborhood(id, r.Name.String(), r.DeliveryPrice.Int64())
}

type statusResponse struct {
	Status          pkg.FlexString  `json:"status"`
	NextOpeningTime pkg.FlexString  `json:"next_opening_time"`
	Networks        json.RawMessage `json:"networks"`
}

// FetchNeighborhood calls GET /neighborhood/{id}/.
func (c *Client) FetchNeighborhood(ctx context.Context, id string) (entities.Neighborhood, error) {
	body, err := c.get(ctx, "/neighborhood/"+url.PathEscape(id)+"/")
	if err != nil {
		return entities.Neighborhood{}, err
	}
	var r neighborhoodResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return entities.Neighborhood{}, fmt.Errorf("decode neighborhood %s: %w", id, err)
	}
	return r.toEntity(), nil
}

// FetchSiteStatus calls GET /site/{id}/status.
func (c *Client) FetchSiteStatus(ctx context.Context, siteID string) (entities.StatusResponse, error) {
	body, err := c.get(ctx, "/site/"+url.PathEscape(siteID)+"/status")
	if err != nil {
		return entities.StatusResponse{}, err
	}
	var r statusResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return entities.StatusResponse{}, fmt.Errorf("decode site status %s: %w", siteID, err)
	}
	out := entities.StatusResponse{
		Status:   r.Status.String(),
		Networks: r.Networks,
	}
	if t, ok := parseOpeningTime(r.NextOpeningTime.String()); ok {
		out.NextOpeningTime = &t
	}
	return out, nil
}

// get shares one request per URL between concurrent callers. The shared
// request runs detached from any single caller's cancellation and is bounded
// by the client timeout; each caller stops waiting when its own ctx ends.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target := c.baseURL + path
	ch := c.group.DoChan(target, func() (interface{}, error) {
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.breaker.Execute(func() ([]byte, error) {
			return c.do(reqCtx, target)
		})
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			c.logger.Debug("backend request failed", zap.String("url", target), zap.Bool("shared", res.Shared), zap.Error(res.Err))
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, URL: target}
	}
	return io.ReadAll(resp.Body)
}

var openingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseOpeningTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range openingTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
