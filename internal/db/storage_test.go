// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewDBClientFromDB(conn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()), mock
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	d, mock := newTestClient(t)
	defer d.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE businesses").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := d.Statement(ctx).Update("businesses").Set("name", "acme").ExecContext(ctx)
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	d, mock := newTestClient(t)
	defer d.Close()

	fnErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM roles").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := d.Statement(ctx).Delete("roles").ExecContext(ctx); err != nil {
			return err
		}
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxBeginFailureNeverReachesPool(t *testing.T) {
	d, mock := newTestClient(t)
	defer d.Close()

	beginErr := errors.New("too many connections")

	// a single failed BEGIN, any statement reaching the pool would be an unexpected call
	mock.ExpectBegin().WillReturnError(beginErr)

	var stmtErrs []error
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := d.Statement(ctx).Insert("businesses").Columns("name").Values("acme").ExecContext(ctx)
		stmtErrs = append(stmtErrs, err)

		var id int64
		err = d.Statement(ctx).Insert("departments").Columns("name").Values("Admin").Suffix("RETURNING id").QueryRowContext(ctx).Scan(&id)
		stmtErrs = append(stmtErrs, err)

		// the scope must fail even when fn swallows the statement errors
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	for _, stmtErr := range stmtErrs {
		assert.ErrorIs(t, stmtErr, beginErr)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxWithoutStatementsNeverBegins(t *testing.T) {
	d, mock := newTestClient(t)
	defer d.Close()

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxNestedScopesShareTransaction(t *testing.T) {
	d, mock := newTestClient(t)
	defer d.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO businesses").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO departments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := d.Statement(ctx).Insert("businesses").Columns("name").Values("acme").ExecContext(ctx); err != nil {
			return err
		}

		return d.WithTx(ctx, func(ctx context.Context) error {
			_, err := d.Statement(ctx).Insert("departments").Columns("name").Values("Admin").ExecContext(ctx)
			return err
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
