package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"RECIPEBOOK_BACK-END/internal/config"
)

// NewPoolConfig parses dsn and applies the pool settings from cfg.
func NewPoolConfig(cfg config.StoreConfig, dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol keeps the pool usable behind PgBouncer
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "recipebook-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000"
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxLifetime
	return poolCfg, nil
}

// NewPool opens a pool with NewPoolConfig and pings it once.
func NewPool(ctx context.Context, cfg config.StoreConfig, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := NewPoolConfig(cfg, dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
