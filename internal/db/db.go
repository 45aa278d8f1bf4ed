package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"socionics-wiki/internal/config"
)

// ErrNotConfigured indica que no hay DATABASE_URL.
var ErrNotConfigured = errors.New("database not configured")

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, ErrNotConfigured
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// El historial de scraping tiene poca carga.
	poolCfg.MaxConns = 5
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS scrape_runs (
	id          UUID PRIMARY KEY,
	status      TEXT NOT NULL,
	base_url    TEXT NOT NULL,
	page_count  INTEGER NOT NULL DEFAULT 0,
	error       TEXT NOT NULL DEFAULT '',
	started_at  TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS page_snapshots (
	id          UUID PRIMARY KEY,
	run_id      UUID NOT NULL REFERENCES scrape_runs(id) ON DELETE CASCADE,
	page_key    TEXT NOT NULL,
	url         TEXT NOT NULL,
	status_code INTEGER NOT NULL,
	attempts    INTEGER NOT NULL,
	paragraph   TEXT NOT NULL DEFAULT '',
	checksum    TEXT NOT NULL,
	fetched_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS page_snapshots_run_id_idx ON page_snapshots (run_id);
`

// EnsureSchema crea las tablas del historial de scraping si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
