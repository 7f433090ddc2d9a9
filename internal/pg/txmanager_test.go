package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn, m *TxManager) func(ctx context.Context) error
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE accounts SET balance = 0").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback()
			},
			fn: func(conn *Conn, _ *TxManager) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, "UPDATE accounts SET balance = 0")
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(_ *Conn, _ *TxManager) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					return errors.New("boom")
				}
			},
			expectErr: true,
		},
		{
			name: "Nested begin joins outer transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM accounts").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback()
			},
			fn: func(conn *Conn, m *TxManager) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					return m.Begin(ctx, func(ctx context.Context) error {
						_, err := conn.Exec(ctx, "DELETE FROM accounts")
						return err
					})
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			m := NewTXManager(mock)
			conn := New(mock)

			err = m.Begin(context.Background(), tt.fn(conn, m))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConn_OutsideTransactionUsesPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE competitions").WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	tag, err := New(mock).Exec(context.Background(), "UPDATE competitions SET participants = 0")
	require.NoError(t, err)
	assert.EqualValues(t, 2, tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}
