package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"socionics-wiki/internal/dataset"
	"socionics-wiki/internal/domain"
	"socionics-wiki/internal/metrics"
	"socionics-wiki/internal/repository"
)

type Options struct {
	BaseURL string
	// Repository es opcional; sin el, los runs no quedan registrados.
	Repository repository.ScrapeRepository
	Metrics    *metrics.Metrics
}

// Scraper descarga las paginas de la wiki y regenera el dataset en disco.
type Scraper struct {
	logger  *zap.Logger
	fetcher Fetcher
	repo    repository.ScrapeRepository
	metrics *metrics.Metrics
	baseURL string
	now     func() time.Time
}

func New(logger *zap.Logger, fetcher Fetcher, opts Options) *Scraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scraper{
		logger:  logger,
		fetcher: fetcher,
		repo:    opts.Repository,
		metrics: opts.Metrics,
		baseURL: opts.BaseURL,
		now:     time.Now,
	}
}

func (s *Scraper) Run(ctx context.Context, outDir string) (domain.ScrapeRun, error) {
	return s.RunWithID(ctx, uuid.NewString(), outDir)
}

// RunWithID ejecuta un run con un id ya asignado, para que el llamador pueda
// devolverlo antes de que el run termine.
func (s *Scraper) RunWithID(ctx context.Context, runID, outDir string) (domain.ScrapeRun, error) {
	run := domain.ScrapeRun{
		ID:        runID,
		Status:    domain.ScrapeStatusRunning,
		BaseURL:   s.baseURL,
		StartedAt: s.now().UTC(),
	}
	log := s.logger.With(zap.String("run_id", run.ID), zap.String("base_url", s.baseURL))
	log.Info("scrape run started")

	if s.repo != nil {
		if err := s.repo.CreateRun(ctx, run); err != nil {
			log.Warn("failed to record scrape run", zap.Error(err))
		}
	}

	ds, pageCount, err := s.collect(ctx, log, run.ID)
	if err == nil {
		err = ds.Validate()
	}
	if err == nil {
		err = dataset.Write(outDir, ds)
	}

	finished := s.now().UTC()
	run.FinishedAt = &finished
	run.PageCount = pageCount
	if err != nil {
		run.Status = domain.ScrapeStatusFailed
		run.Error = err.Error()
		log.Error("scrape run failed", zap.Int("pages", pageCount), zap.Error(err))
	} else {
		run.Status = domain.ScrapeStatusSucceeded
		log.Info("scrape run finished", zap.Int("pages", pageCount), zap.String("out_dir", outDir))
	}

	if s.repo != nil {
		// ctx puede estar cancelado; el estado final se registra igual.
		finishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		if ferr := s.repo.FinishRun(finishCtx, run.ID, run.Status, run.Error, run.PageCount, finished); ferr != nil {
			log.Warn("failed to finish scrape run", zap.Error(ferr))
		}
		cancel()
	}
	if s.metrics != nil {
		s.metrics.ScrapeRunsTotal.WithLabelValues(run.Status).Inc()
	}
	return run, err
}

func (s *Scraper) collect(ctx context.Context, log *zap.Logger, runID string) (*dataset.Dataset, int, error) {
	base := dataset.Canonical()
	types := base.Types()
	index := make(map[string]int, len(types))
	for i, t := range types {
		index[t.Code] = i
	}
	overview := base.Overview()

	fetched := 0
	for _, page := range Pages(s.baseURL) {
		if err := ctx.Err(); err != nil {
			return nil, fetched, err
		}

		start := time.Now()
		res, err := s.fetcher.Fetch(ctx, page.URL)
		if err != nil {
			return nil, fetched, fmt.Errorf("fetch %s: %w", page.Key, err)
		}
		fetched++

		paragraph, err := ExtractLead(res.Body)
		if err != nil {
			log.Warn("keeping canonical text", zap.String("page", page.Key), zap.Error(err))
			paragraph = ""
		}
		if s.metrics != nil {
			s.metrics.PageDuration.Observe(time.Since(start).Seconds())
		}

		fetchedAt := s.now().UTC()
		if paragraph != "" {
			if page.Key == OverviewPageKey {
				overview.Summary = paragraph
				overview.Source = page.URL
				overview.FetchedAt = &fetchedAt
			} else if i, ok := index[page.Key]; ok {
				types[i].Overview = paragraph
				types[i].Href = page.URL
			}
		}
		log.Debug("page scraped",
			zap.String("page", page.Key),
			zap.Int("status", res.StatusCode),
			zap.Int("attempts", res.Attempts),
			zap.Bool("updated", paragraph != ""),
		)

		s.savePage(ctx, log, domain.PageSnapshot{
			ID:         uuid.NewString(),
			RunID:      runID,
			PageKey:    page.Key,
			URL:        page.URL,
			StatusCode: res.StatusCode,
			Attempts:   res.Attempts,
			Paragraph:  paragraph,
			Checksum:   checksum(res.Body),
			FetchedAt:  fetchedAt,
		})
	}

	return dataset.New(types, base.Relations(), base.Glossary(), overview), fetched, nil
}

func (s *Scraper) savePage(ctx context.Context, log *zap.Logger, page domain.PageSnapshot) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SavePage(ctx, page); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("failed to record page snapshot", zap.String("page", page.PageKey), zap.Error(err))
	}
}

func checksum(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
