package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"chaosshare/internal/config"
	"chaosshare/internal/domain"
)

const shareColumns = `id, short_code, owner_id, map_type, parameters, view_count, created_at, expires_at`

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *PostgresRepository) PoolStats() PoolStats {
	stat := r.pool.Stat()
	return PoolStats{
		Acquired: int(stat.AcquiredConns()),
		Idle:     int(stat.IdleConns()),
		Total:    int(stat.TotalConns()),
		Max:      int(stat.MaxConns()),
	}
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

// WithinTx runs fn in a SERIALIZABLE transaction. Conflicts with concurrent
// transactions surface as ErrSerialization, from fn or from the commit.
func (r *PostgresRepository) WithinTx(ctx context.Context, fn func(Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapPgError(err))
	}
	// Rollback must still reach the server when ctx is already cancelled.
	defer tx.Rollback(context.WithoutCancel(ctx))

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", mapPgError(err))
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) SharesSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Share, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT `+shareColumns+` FROM shares
		 WHERE owner_id = $1 AND created_at >= $2
		 ORDER BY created_at ASC, id ASC`,
		ownerID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", mapPgError(err))
	}
	shares, err := pgx.CollectRows(rows, collectPgShare)
	if err != nil {
		return nil, fmt.Errorf("failed to scan shares: %w", mapPgError(err))
	}
	return shares, nil
}

func (t *pgTx) Insert(ctx context.Context, s domain.NewShare) (*domain.Share, error) {
	// DO NOTHING keeps the transaction usable after a collision, so the caller
	// can retry with another code inside the same transaction.
	row := t.tx.QueryRow(ctx,
		`INSERT INTO shares (short_code, owner_id, map_type, parameters, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (short_code) DO NOTHING
		 RETURNING `+shareColumns,
		s.ShortCode, s.OwnerID, s.MapType, []byte(s.Parameters), s.CreatedAt, s.ExpiresAt,
	)
	share, err := scanPgShare(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to insert share: %w", mapPgError(err))
	}
	return &share, nil
}

func (r *PostgresRepository) ActiveCodeExists(ctx context.Context, code string, now time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM shares WHERE short_code = $1 AND expires_at >= $2)`,
		code, now,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check short code: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) FindByShortCode(ctx context.Context, code string) (*domain.Share, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+shareColumns+` FROM shares WHERE short_code = $1`, code)
	share, err := scanPgShare(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find share: %w", err)
	}
	return &share, nil
}

func (r *PostgresRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`UPDATE shares SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM shares WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, now time.Time) ([]domain.Share, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+shareColumns+` FROM shares
		 WHERE owner_id = $1 AND expires_at >= $2
		 ORDER BY created_at DESC, id DESC`,
		ownerID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	shares, err := pgx.CollectRows(rows, collectPgShare)
	if err != nil {
		return nil, fmt.Errorf("failed to scan shares: %w", err)
	}
	return shares, nil
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id int64, ownerID string) (string, error) {
	var code string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM shares WHERE id = $1 AND owner_id = $2 RETURNING short_code`, id, ownerID,
	).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to delete share: %w", err)
	}
	return code, nil
}

func (r *PostgresRepository) DeleteByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `DELETE FROM shares WHERE owner_id = $1 RETURNING short_code`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete owner shares: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to delete owner shares: %w", err)
	}
	return codes, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shares WHERE expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired shares: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) Stats(ctx context.Context, now time.Time) (Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE expires_at < $1) FROM shares`, now,
	).Scan(&s.Total, &s.Expired)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read share stats: %w", err)
	}
	return s, nil
}

func scanPgShare(row pgx.Row) (domain.Share, error) {
	var s domain.Share
	var params []byte
	err := row.Scan(&s.ID, &s.ShortCode, &s.OwnerID, &s.MapType, &params, &s.ViewCount, &s.CreatedAt, &s.ExpiresAt)
	s.Parameters = params
	return s, err
}

func collectPgShare(row pgx.CollectableRow) (domain.Share, error) {
	return scanPgShare(row)
}

// mapPgError translates the SQLSTATEs the service reacts to into sentinels,
// keeping the driver error in the chain.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "40001", "40P01":
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	case "23505":
		if pgErr.ConstraintName == shortCodeConstraint {
			return fmt.Errorf("%w: %w", ErrCodeTaken, err)
		}
	}
	return err
}
