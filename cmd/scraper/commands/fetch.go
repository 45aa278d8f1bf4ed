package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"socionics-wiki/internal/config"
	"socionics-wiki/internal/db"
	"socionics-wiki/internal/metrics"
	"socionics-wiki/internal/repository"
	"socionics-wiki/internal/scraper"
)

var (
	fetchOut     string
	fetchBaseURL string
)

func init() {
	fetchCmd.Flags().StringVar(&fetchOut, "out", "data", "Directory to write the dataset JSON files to.")
	fetchCmd.Flags().StringVar(&fetchBaseURL, "base-url", "", "Wiki base URL (defaults to SCRAPER_BASE_URL).")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--out <dir>] [--base-url <url>]",
	Short: "Scrapes the wiki and rewrites the dataset files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if fetchBaseURL != "" {
			cfg.ScraperBaseURL = fetchBaseURL
		}

		var repo repository.ScrapeRepository
		pool, err := db.NewPool(ctx, cfg)
		switch {
		case errors.Is(err, db.ErrNotConfigured):
		case err != nil:
			return fmt.Errorf("db connect: %w", err)
		default:
			defer pool.Close()
			if err := db.Ping(ctx, pool); err != nil {
				return fmt.Errorf("db ping: %w", err)
			}
			if err := db.EnsureSchema(ctx, pool); err != nil {
				return fmt.Errorf("db schema: %w", err)
			}
			repo = repository.NewPgScrapeRepository(pool)
		}

		m := metrics.Default()
		fetcher := scraper.NewHTTPFetcher(scraper.HTTPFetcherOptions{
			Timeout:   cfg.ScraperTimeout,
			UserAgent: cfg.ScraperUserAgent,
			Retry:     scraper.RetryPolicy{MaxAttempts: cfg.ScraperMaxAttempts, Backoff: cfg.ScraperBackoff},
			Metrics:   m,
		})
		s := scraper.New(logger, fetcher, scraper.Options{
			BaseURL:    cfg.ScraperBaseURL,
			Repository: repo,
			Metrics:    m,
		})

		run, err := s.Run(ctx, fetchOut)
		if err != nil {
			return fmt.Errorf("scrape run %s: %w", run.ID, err)
		}
		logger.Info("dataset written",
			zap.String("run_id", run.ID),
			zap.String("out", fetchOut),
			zap.Int("pages", run.PageCount),
		)
		return nil
	},
}
