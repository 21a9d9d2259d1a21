package pg

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/lockit/core/logger"
)

// Connect creates a pgx connection pool, verifying connectivity with
// exponential backoff so transient startup failures don't kill the process.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrEmptyConnectionString
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}

	poolCfg.MaxConns = cfg.MaxOpenConns
	poolCfg.MinConns = cfg.MaxIdleConns
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(cfg.RetryInterval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}

	return pool, nil
}

// Migrate applies pending goose migrations from cfg.MigrationsPath using a
// database/sql view of the pool, which goose requires.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if cfg.MigrationsPath == "" {
		return ErrMigrationPathNotProvided
	}
	if _, err := os.Stat(cfg.MigrationsPath); err != nil {
		return errors.Join(ErrMigrationsDirNotFound, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil && log != nil {
			log.WarnContext(ctx, "failed to close migration db handle", logger.Error(err))
		}
	}()

	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, cfg.MigrationsPath); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if log != nil {
		log.InfoContext(ctx, "database migrations applied",
			slog.String("path", cfg.MigrationsPath))
	}
	return nil
}

// Healthcheck returns a probe function that pings the pool.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// IsNotFoundError reports whether err is a missing-row error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolationError reports whether err is a referential integrity
// violation.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// IsTxClosedError reports whether err came from using a finished transaction.
func IsTxClosedError(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
