package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/potatolake/internal/logging"
	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("objectstore: blob service unavailable")

// HTTPConfig configures the remote blob store.
type HTTPConfig struct {
	BaseURL   string // PUT target prefix
	PublicURL string // prefix of returned URLs; defaults to BaseURL
	Token     string
	Client    *http.Client
	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// HTTP stores uploads by PUTting them to a blob service.
type HTTP struct {
	baseURL   string
	publicURL string
	token     string
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker[string]
}

// NewHTTP creates an HTTP store guarded by a circuit breaker.
func NewHTTP(cfg HTTPConfig) *HTTP {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	public := strings.TrimRight(strings.TrimSpace(cfg.PublicURL), "/")
	if public == "" {
		public = base
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	timeout := cfg.OpenTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "blob-store",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("blob store circuit breaker state changed")
		},
	}

	return &HTTP{
		baseURL:   base,
		publicURL: public,
		token:     strings.TrimSpace(cfg.Token),
		client:    client,
		breaker:   gobreaker.NewCircuitBreaker[string](settings),
	}
}

// Put uploads body to <base>/<name> and returns <public>/<name>.
func (h *HTTP) Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	url, err := h.breaker.Execute(func() (string, error) {
		return h.put(ctx, name, contentType, body, size)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrUnavailable
	}
	return url, err
}

func (h *HTTP) put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, h.baseURL+"/"+name, body)
	if err != nil {
		return "", fmt.Errorf("objectstore: build request: %w", err)
	}
	req.ContentLength = size
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("objectstore: put %s: %w", name, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("objectstore: put %s: unexpected status %d", name, resp.StatusCode)
	}
	return h.publicURL + "/" + name, nil
}
