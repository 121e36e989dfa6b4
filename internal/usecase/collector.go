package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	drepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/cache"
	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/logger"
)

const (
	// DefaultRecordTTL bounds how long a fetched company record is reused.
	DefaultRecordTTL = 15 * time.Minute

	sourceTimeout = 8 * time.Second
	sourceRetries = 1
)

// Collector assembles a CompanyRecord from the financial and news sources,
// with a read-through cache in front. Financial data is mandatory; missing
// news degrades the record instead of failing it.
type Collector struct {
	financial drepo.FinancialSource
	news      drepo.NewsSource
	cache     cache.Service
	metrics   drepo.Metrics
	log       *logger.Logger
	ttl       time.Duration
}

// NewCollector wires the collector. The cache may be nil in tests.
func NewCollector(financial drepo.FinancialSource, news drepo.NewsSource, c cache.Service, m drepo.Metrics, log *logger.Logger) *Collector {
	return &Collector{
		financial: financial,
		news:      news,
		cache:     c,
		metrics:   m,
		log:       log,
		ttl:       DefaultRecordTTL,
	}
}

// SetTTL overrides the record cache TTL.
func (c *Collector) SetTTL(d time.Duration) {
	if d > 0 {
		c.ttl = d
	}
}

func companyKey(ticker string) string {
	return cache.GenerateKey("company", ticker)
}

// Collect returns the company record for a ticker, fetching both sources
// concurrently on cache miss. Returns ErrInvalidTicker for malformed input
// and ErrDataUnavailable when the financial source cannot serve.
func (c *Collector) Collect(ctx context.Context, ticker string) (*models.CompanyRecord, error) {
	ticker = models.NormalizeTicker(ticker)
	if !models.ValidTicker(ticker) {
		return nil, fmt.Errorf("collect %q: %w", ticker, models.ErrInvalidTicker)
	}

	if c.cache != nil {
		var cached models.CompanyRecord
		if err := c.cache.Get(ctx, companyKey(ticker), &cached); err == nil {
			return &cached, nil
		}
	}

	start := time.Now()
	rec, err := c.fetch(ctx, ticker)
	c.metrics.RecordLatency("collect", time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordError("collect")
		return nil, err
	}

	// Degraded records are not cached so the next request retries the
	// missing source.
	if c.cache != nil && !rec.Degraded {
		if cerr := c.cache.Set(ctx, companyKey(ticker), rec, c.ttl); cerr != nil {
			c.log.Warn("company cache write failed",
				logger.String("ticker", ticker), logger.Error(cerr))
		}
	}
	return rec, nil
}

func (c *Collector) fetch(ctx context.Context, ticker string) (*models.CompanyRecord, error) {
	type finResult struct {
		rec *models.CompanyRecord
		err error
	}
	finCh := make(chan finResult, 1)
	go func() {
		rec, err := fetchWithRetry(ctx, func(ctx context.Context) (*models.CompanyRecord, error) {
			return c.financial.Fundamentals(ctx, ticker)
		})
		finCh <- finResult{rec, err}
	}()

	type newsResult struct {
		headlines []models.Headline
		err       error
	}
	newsCh := make(chan newsResult, 1)
	go func() {
		if c.news == nil || !c.news.Available() {
			newsCh <- newsResult{nil, models.ErrDataUnavailable}
			return
		}
		// Company name is not known before the financial fetch completes;
		// the provider falls back to a ticker-only query.
		hs, err := fetchWithRetry(ctx, func(ctx context.Context) ([]models.Headline, error) {
			return c.news.Headlines(ctx, ticker, "")
		})
		newsCh <- newsResult{hs, err}
	}()

	fin := <-finCh
	news := <-newsCh

	if fin.err != nil {
		return nil, fmt.Errorf("fundamentals %s: %w", ticker, fin.err)
	}

	rec := fin.rec
	if news.err != nil {
		rec.Degraded = true
		c.log.Warn("news source unavailable, scoring without sentiment",
			logger.String("ticker", ticker), logger.Error(news.err))
	} else {
		rec.Headlines = news.headlines
	}
	rec.FetchedAt = time.Now().UTC()
	return rec, nil
}

// fetchWithRetry runs fn with a per-attempt timeout and a single retry.
func fetchWithRetry[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var (
		out T
		err error
	)
	for attempt := 0; attempt <= sourceRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
		out, err = fn(attemptCtx)
		cancel()
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return out, err
}
