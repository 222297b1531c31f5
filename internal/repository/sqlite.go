package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"chaosshare/internal/domain"
)

// SQLiteRepository keeps a single connection open, so transactions are
// executed one at a time and the quota read cannot interleave with another
// owner's insert.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) PoolStats() PoolStats {
	stat := r.db.Stats()
	return PoolStats{
		Acquired: stat.InUse,
		Idle:     stat.Idle,
		Total:    stat.OpenConnections,
		Max:      stat.MaxOpenConnections,
	}
}

func (r *SQLiteRepository) Close() {
	r.db.Close()
}

func (r *SQLiteRepository) WithinTx(ctx context.Context, fn func(Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqliteTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) SharesSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Share, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT `+shareColumns+` FROM shares
		 WHERE owner_id = ? AND created_at >= ?
		 ORDER BY created_at ASC, id ASC`,
		ownerID, since.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	return collectSQLiteShares(rows)
}

func (t *sqliteTx) Insert(ctx context.Context, s domain.NewShare) (*domain.Share, error) {
	row := t.tx.QueryRowContext(ctx,
		`INSERT INTO shares (short_code, owner_id, map_type, parameters, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (short_code) DO NOTHING
		 RETURNING `+shareColumns,
		s.ShortCode, s.OwnerID, s.MapType, string(s.Parameters), s.CreatedAt.UnixNano(), s.ExpiresAt.UnixNano(),
	)
	share, err := scanSQLiteShare(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to insert share: %w", err)
	}
	return &share, nil
}

func (r *SQLiteRepository) ActiveCodeExists(ctx context.Context, code string, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM shares WHERE short_code = ? AND expires_at >= ?)`,
		code, now.UnixNano(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check short code: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) FindByShortCode(ctx context.Context, code string) (*domain.Share, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+shareColumns+` FROM shares WHERE short_code = ?`, code)
	share, err := scanSQLiteShare(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find share: %w", err)
	}
	return &share, nil
}

func (r *SQLiteRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE shares SET view_count = view_count + 1 WHERE id = ? RETURNING view_count`, id,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shares WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string, now time.Time) ([]domain.Share, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+shareColumns+` FROM shares
		 WHERE owner_id = ? AND expires_at >= ?
		 ORDER BY created_at DESC, id DESC`,
		ownerID, now.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	return collectSQLiteShares(rows)
}

func (r *SQLiteRepository) DeleteOwned(ctx context.Context, id int64, ownerID string) (string, error) {
	var code string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM shares WHERE id = ? AND owner_id = ? RETURNING short_code`, id, ownerID,
	).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to delete share: %w", err)
	}
	return code, nil
}

func (r *SQLiteRepository) DeleteByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `DELETE FROM shares WHERE owner_id = ? RETURNING short_code`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete owner shares: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to delete owner shares: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to delete owner shares: %w", err)
	}
	return codes, nil
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shares WHERE expires_at < ?`, before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired shares: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) Stats(ctx context.Context, now time.Time) (Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN expires_at < ? THEN 1 ELSE 0 END), 0) FROM shares`,
		now.UnixNano(),
	).Scan(&s.Total, &s.Expired)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read share stats: %w", err)
	}
	return s, nil
}

type sqlScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteShare(row sqlScanner) (domain.Share, error) {
	var s domain.Share
	var params string
	var createdAt, expiresAt int64
	err := row.Scan(&s.ID, &s.ShortCode, &s.OwnerID, &s.MapType, &params, &s.ViewCount, &createdAt, &expiresAt)
	if err != nil {
		return domain.Share{}, err
	}
	s.Parameters = []byte(params)
	s.CreatedAt = time.Unix(0, createdAt).UTC()
	s.ExpiresAt = time.Unix(0, expiresAt).UTC()
	return s, nil
}

func collectSQLiteShares(rows *sql.Rows) ([]domain.Share, error) {
	defer rows.Close()

	var shares []domain.Share
	for rows.Next() {
		s, err := scanSQLiteShare(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shares: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan shares: %w", err)
	}
	return shares, nil
}
