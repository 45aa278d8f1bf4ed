package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"socionics-wiki/internal/domain"
	"socionics-wiki/internal/repository"
)

var (
	ErrScrapeUnavailable = errors.New("scraping unavailable")
	ErrScrapeInProgress  = errors.New("scrape already running")
	ErrRunNotFound       = errors.New("scrape run not found")
)

const scrapeRunTimeout = 10 * time.Minute

// ScrapeRunner ejecuta un run completo del scraper.
type ScrapeRunner interface {
	RunWithID(ctx context.Context, runID, outDir string) (domain.ScrapeRun, error)
}

// ScrapeService lanza runs en segundo plano y expone su historial.
// Solo se permite un run a la vez.
type ScrapeService struct {
	logger  *zap.Logger
	runner  ScrapeRunner
	repo    repository.ScrapeRepository
	outDir  string
	running atomic.Bool
	wg      sync.WaitGroup
}

func NewScrapeService(logger *zap.Logger, runner ScrapeRunner, repo repository.ScrapeRepository, outDir string) *ScrapeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScrapeService{
		logger: logger,
		runner: runner,
		repo:   repo,
		outDir: outDir,
	}
}

// Start inicia un run y devuelve su id sin esperar a que termine.
func (s *ScrapeService) Start(ctx context.Context) (string, error) {
	if s == nil || s.runner == nil {
		return "", ErrScrapeUnavailable
	}
	if !s.running.CompareAndSwap(false, true) {
		return "", ErrScrapeInProgress
	}

	runID := uuid.NewString()
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), scrapeRunTimeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)
		defer cancel()

		if _, err := s.runner.RunWithID(runCtx, runID, s.outDir); err != nil {
			s.logger.Warn("background scrape failed", zap.String("run_id", runID), zap.Error(err))
		}
	}()
	return runID, nil
}

// Wait bloquea hasta que termine el run en curso, si lo hay.
func (s *ScrapeService) Wait() {
	if s != nil {
		s.wg.Wait()
	}
}

func (s *ScrapeService) HistoryEnabled() bool {
	return s != nil && s.repo != nil
}

func (s *ScrapeService) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	if !s.HistoryEnabled() {
		return nil, ErrScrapeUnavailable
	}
	runs, err := s.repo.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// ListPages devuelve las paginas de un run existente.
func (s *ScrapeService) ListPages(ctx context.Context, runID string) (domain.ScrapeRun, []domain.PageSnapshot, error) {
	if !s.HistoryEnabled() {
		return domain.ScrapeRun{}, nil, ErrScrapeUnavailable
	}
	run, err := s.repo.GetRun(ctx, runID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ScrapeRun{}, nil, ErrRunNotFound
		}
		return domain.ScrapeRun{}, nil, fmt.Errorf("get run: %w", err)
	}
	pages, err := s.repo.ListPages(ctx, runID)
	if err != nil {
		return domain.ScrapeRun{}, nil, fmt.Errorf("list pages: %w", err)
	}
	return run, pages, nil
}
