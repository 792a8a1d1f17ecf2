// Package fetch retrieves posting pages over HTTP and runs them through the
// extractor. It is the engine-side stand-in for the browser content script:
// sources without a live DOM (email ingestion, API callers handing over a
// URL) go through here.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"goodjob-engine/internal/domain"
	"goodjob-engine/internal/extract"
	"goodjob-engine/internal/extract/page"
)

const (
	userAgent      = "GoodJob/1.0 (+local)"
	maxRenderDelay = 5 * time.Second
	batchWorkers   = 8
)

type Options struct {
	// RenderDelay is a one-time pause before the extraction attempt, for
	// boards that inject content after load. Capped at 5s; it is a grace
	// period, not a guarantee, and partial data is acceptable.
	RenderDelay time.Duration
	Timeout     time.Duration
	ReqPerSec   float64
	Burst       int
}

type Client struct {
	hc      *http.Client
	limiter *HostLimiter
	ex      *extract.Extractor
	delay   time.Duration
	log     zerolog.Logger
}

func New(ex *extract.Extractor, opts Options, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	delay := opts.RenderDelay
	if delay > maxRenderDelay {
		delay = maxRenderDelay
	}
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		limiter: NewHostLimiter(opts.ReqPerSec, opts.Burst),
		ex:      ex,
		delay:   delay,
		log:     logger,
	}
}

// Page fetches rawURL and parses it into an extraction handle.
func (c *Client) Page(ctx context.Context, rawURL string) (*page.Page, error) {
	if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch status %d for %s", res.StatusCode, rawURL)
	}

	p, err := page.New(rawURL, res.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch parse html: %w", err)
	}
	return p, nil
}

// ExtractURL fetches one posting URL and extracts it. The configured render
// delay runs once, before the extraction attempt.
func (c *Client) ExtractURL(ctx context.Context, rawURL string) (domain.JobPosting, error) {
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.JobPosting{}, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	p, err := c.Page(ctx, rawURL)
	if err != nil {
		return domain.JobPosting{}, err
	}
	return c.ex.Extract(p), nil
}

// ExtractAll runs ExtractURL over a batch with bounded parallelism. URLs
// that fail to fetch are logged and skipped; one dead link never sinks the
// batch.
func (c *Client) ExtractAll(ctx context.Context, urls []string) []domain.JobPosting {
	out := make([]domain.JobPosting, len(urls))
	ok := make([]bool, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, u := range urls {
		g.Go(func() error {
			jp, err := c.ExtractURL(gctx, u)
			if err != nil {
				c.log.Warn().Str("url", u).Err(err).Msg("batch extract skip")
				return nil
			}
			out[i] = jp
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()

	kept := out[:0]
	for i := range out {
		if ok[i] {
			kept = append(kept, out[i])
		}
	}
	return kept
}
