package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"socionics-wiki/internal/metrics"
)

var (
	// ErrFetchExhausted se devuelve cuando una pagina agota todos los intentos.
	ErrFetchExhausted = errors.New("fetch retries exhausted")
	errPermanent      = errors.New("permanent http error")
)

// Fetcher descarga una pagina.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (FetchResult, error)
}

type FetchResult struct {
	URL        string
	StatusCode int
	Body       []byte
	Attempts   int
}

// RetryPolicy define reintentos con backoff lineal: tras el intento n se espera n*Backoff.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

type HTTPFetcherOptions struct {
	Timeout   time.Duration
	UserAgent string
	Retry     RetryPolicy
	Metrics   *metrics.Metrics
}

// HTTPFetcher implementa Fetcher sobre resty con timeout por request.
type HTTPFetcher struct {
	client  *resty.Client
	retry   RetryPolicy
	metrics *metrics.Metrics
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewHTTPFetcher(opts HTTPFetcherOptions) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Retry.MaxAttempts <= 0 {
		opts.Retry.MaxAttempts = 1
	}
	if opts.Retry.Backoff < 0 {
		opts.Retry.Backoff = 0
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	if opts.UserAgent != "" {
		client.SetHeader("user-agent", opts.UserAgent)
	}
	client.SetHeader("accept", "text/html")

	return &HTTPFetcher{
		client:  client,
		retry:   opts.Retry,
		metrics: opts.Metrics,
		sleep:   sleepContext,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (FetchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= f.retry.MaxAttempts; attempt++ {
		res, err := f.fetchOnce(ctx, url)
		res.Attempts = attempt
		if err == nil {
			f.observe("ok")
			return res, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			f.observe("error")
			return res, ctx.Err()
		}
		if errors.Is(err, errPermanent) || attempt == f.retry.MaxAttempts {
			f.observe("error")
			break
		}
		f.observe("retry")

		if err := f.sleep(ctx, time.Duration(attempt)*f.retry.Backoff); err != nil {
			return res, err
		}
	}
	return FetchResult{URL: url}, fmt.Errorf("%w: %s: %w", ErrFetchExhausted, url, lastErr)
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) (FetchResult, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return FetchResult{URL: url}, fmt.Errorf("do request: %w", err)
	}

	res := FetchResult{URL: url, StatusCode: resp.StatusCode(), Body: resp.Body()}
	switch code := resp.StatusCode(); {
	case code < 400:
		return res, nil
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500:
		return res, fmt.Errorf("http status %d", code)
	default:
		return res, fmt.Errorf("%w: status %d", errPermanent, code)
	}
}

func (f *HTTPFetcher) observe(outcome string) {
	if f.metrics != nil {
		f.metrics.FetchAttemptsTotal.WithLabelValues(outcome).Inc()
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
