package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// StatusError reports an unexpected HTTP status from a catalog API.
type StatusError struct {
	Code int
	// Body is the complete response body.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, truncate(e.Body, 200))
}

// Retryable reports whether the request may succeed when repeated.
func (e *StatusError) Retryable() bool {
	return e.Code == fiber.StatusTooManyRequests || e.Code >= fiber.StatusInternalServerError
}

// Transport performs paced, retrying HTTP requests with the Fiber client.
type Transport struct {
	limiter   *rate.Limiter
	timeout   time.Duration
	retries   int
	backoff   time.Duration
	userAgent string
}

// NewTransport builds a transport from the provider configuration.
func NewTransport(cfg Config) *Transport {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Transport{
		limiter:   rate.NewLimiter(limit, 1),
		timeout:   time.Duration(timeout) * time.Second,
		retries:   max(cfg.MaxRetries, 0),
		backoff:   time.Duration(max(cfg.RetryBackoffMillis, 0)) * time.Millisecond,
		userAgent: cfg.UserAgent,
	}
}

// Do sends the request produced by newAgent and returns the body of a 200 response.
// newAgent is called once per attempt because agents cannot be reused.
func (t *Transport) Do(ctx context.Context, newAgent func() *fiber.Agent) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		if err := t.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		body, retryable, err := t.send(newAgent())
		if err == nil {
			return body, nil
		}
		if !retryable || attempt >= t.retries {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.backoff * time.Duration(attempt+1)):
		}
	}
}

func (t *Transport) send(a *fiber.Agent) (body []byte, retryable bool, err error) {
	if t.userAgent != "" {
		a.UserAgent(t.userAgent)
	}
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	a.Timeout(t.timeout)

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, false, fmt.Errorf("invalid request: %w", err)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, true, fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		statusErr := &StatusError{Code: code, Body: string(body)}
		return nil, statusErr.Retryable(), statusErr
	}
	return body, false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
