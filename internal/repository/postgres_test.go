package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "serialization failure",
			err:     &pgconn.PgError{Code: "40001"},
			wantErr: ErrSerialization,
		},
		{
			name:    "deadlock",
			err:     &pgconn.PgError{Code: "40P01"},
			wantErr: ErrSerialization,
		},
		{
			name:    "short code unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: shortCodeConstraint},
			wantErr: ErrCodeTaken,
		},
		{
			name:    "wrapped serialization failure",
			err:     fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"}),
			wantErr: ErrSerialization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPgError(tt.err)
			assert.ErrorIs(t, got, tt.wantErr)

			var pgErr *pgconn.PgError
			assert.True(t, errors.As(got, &pgErr), "driver error must stay in the chain")
		})
	}
}

func TestMapPgError_PassesThroughOthers(t *testing.T) {
	other := &pgconn.PgError{Code: "23505", ConstraintName: "shares_pkey"}
	got := mapPgError(other)
	assert.NotErrorIs(t, got, ErrCodeTaken)
	assert.Same(t, other, got)

	plain := errors.New("connection reset")
	assert.Same(t, plain, mapPgError(plain))

	check := &pgconn.PgError{Code: "23514"}
	assert.NotErrorIs(t, mapPgError(check), ErrSerialization)
}
