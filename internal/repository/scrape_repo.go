package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"socionics-wiki/internal/domain"
)

type ScrapeRepository interface {
	CreateRun(ctx context.Context, run domain.ScrapeRun) error
	FinishRun(ctx context.Context, id, status, errMsg string, pageCount int, finishedAt time.Time) error
	SavePage(ctx context.Context, page domain.PageSnapshot) error
	GetRun(ctx context.Context, id string) (domain.ScrapeRun, error)
	ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error)
	ListPages(ctx context.Context, runID string) ([]domain.PageSnapshot, error)
}

type PgScrapeRepository struct {
	pool *pgxpool.Pool
}

func NewPgScrapeRepository(pool *pgxpool.Pool) *PgScrapeRepository {
	return &PgScrapeRepository{pool: pool}
}

func (r *PgScrapeRepository) CreateRun(ctx context.Context, run domain.ScrapeRun) error {
	const query = `
		INSERT INTO scrape_runs (id, status, base_url, page_count, error, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		run.ID,
		run.Status,
		run.BaseURL,
		run.PageCount,
		run.Error,
		run.StartedAt,
	)
	return err
}

func (r *PgScrapeRepository) FinishRun(ctx context.Context, id, status, errMsg string, pageCount int, finishedAt time.Time) error {
	const query = `
		UPDATE scrape_runs
		SET status = $2, error = $3, page_count = $4, finished_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, status, errMsg, pageCount, finishedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgScrapeRepository) SavePage(ctx context.Context, page domain.PageSnapshot) error {
	const query = `
		INSERT INTO page_snapshots (id, run_id, page_key, url, status_code, attempts, paragraph, checksum, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		page.ID,
		page.RunID,
		page.PageKey,
		page.URL,
		page.StatusCode,
		page.Attempts,
		page.Paragraph,
		page.Checksum,
		page.FetchedAt,
	)
	return err
}

func (r *PgScrapeRepository) GetRun(ctx context.Context, id string) (domain.ScrapeRun, error) {
	const query = `
		SELECT id, status, base_url, page_count, error, started_at, finished_at
		FROM scrape_runs
		WHERE id = $1
	`
	run, err := scanRun(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.ScrapeRun{}, err
	}
	return run, nil
}

func (r *PgScrapeRepository) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, status, base_url, page_count, error, started_at, finished_at
		FROM scrape_runs
		ORDER BY started_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.ScrapeRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *PgScrapeRepository) ListPages(ctx context.Context, runID string) ([]domain.PageSnapshot, error) {
	const query = `
		SELECT id, run_id, page_key, url, status_code, attempts, paragraph, checksum, fetched_at
		FROM page_snapshots
		WHERE run_id = $1
		ORDER BY fetched_at, page_key
	`
	rows, err := r.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.PageSnapshot
	for rows.Next() {
		var p domain.PageSnapshot
		if err := rows.Scan(
			&p.ID,
			&p.RunID,
			&p.PageKey,
			&p.URL,
			&p.StatusCode,
			&p.Attempts,
			&p.Paragraph,
			&p.Checksum,
			&p.FetchedAt,
		); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

func scanRun(row pgx.Row) (domain.ScrapeRun, error) {
	var run domain.ScrapeRun
	err := row.Scan(
		&run.ID,
		&run.Status,
		&run.BaseURL,
		&run.PageCount,
		&run.Error,
		&run.StartedAt,
		&run.FinishedAt,
	)
	return run, err
}
