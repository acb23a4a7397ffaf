// Package database is the item store: a single GORM handle over either a
// PostgreSQL pgx pool or a local SQLite file.
//
// The handle is process-scoped. Open it once on startup, inject the
// Repository into the service layer, and Close it on shutdown.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JonMunkholm/inventory/internal/config"
	"github.com/JonMunkholm/inventory/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Repository provides item persistence on top of GORM.
type Repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	pool  *pgxpool.Pool // nil for SQLite
}

// Open connects to the store selected by cfg.URL and, when cfg.AutoMigrate
// is set, creates the items table if it does not exist.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Repository, error) {
	var (
		repo      = &Repository{}
		dialector gorm.Dialector
	)

	switch {
	case config.IsPostgresURL(cfg.URL):
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repo.pool = pool
		repo.sqlDB = stdlib.OpenDBFromPool(pool)
		dialector = postgres.New(postgres.Config{Conn: repo.sqlDB})

	case config.IsSQLiteURL(cfg.URL):
		dialector = sqlite.Open(sqliteDSN(cfg.URL))

	default:
		return nil, fmt.Errorf("unsupported database url scheme")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	repo.db = db

	if repo.sqlDB == nil {
		sqlDB, err := db.DB()
		if err != nil {
			repo.Close()
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// SQLite allows a single writer; serialize through one connection.
		sqlDB.SetMaxOpenConns(1)
		repo.sqlDB = sqlDB
	}

	if cfg.AutoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(&models.Item{}); err != nil {
			repo.Close()
			return nil, fmt.Errorf("auto-migrate items: %w", err)
		}
	}

	slog.Info("connected to item store", "dialect", db.Dialector.Name(), "name", storeName(cfg.URL))
	return repo, nil
}

// openPool parses the URL, applies pool sizing and verifies the connection.
func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Ping verifies the store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.sqlDB.PingContext(ctx)
}

// Close releases the underlying connections. Safe to call more than once.
func (r *Repository) Close() error {
	var err error
	if r.sqlDB != nil {
		err = r.sqlDB.Close()
		r.sqlDB = nil
	}
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
	return err
}

// sqliteDSN strips the sqlite: prefix; file: URIs pass through unchanged.
func sqliteDSN(raw string) string {
	return strings.TrimPrefix(raw, "sqlite:")
}

// storeName returns a log-safe identifier for the store (no credentials).
func storeName(raw string) string {
	if config.IsSQLiteURL(raw) {
		return sqliteDSN(raw)
	}
	if u, err := url.Parse(raw); err == nil {
		return strings.TrimPrefix(u.Path, "/")
	}
	return ""
}
