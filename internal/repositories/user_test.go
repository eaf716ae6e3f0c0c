package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "password_hash", "balance", "created_at"}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("ahab").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(1), "ahab", "hash", "250.5", createdAt))

		user, err := NewUserReadRepository(db).GetByUsername(ctx, "ahab")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.UserID)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.True(t, decimal.RequireFromString("250.5").Equal(user.Balance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		user, err := NewUserReadRepository(db).GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WillReturnError(errors.New("connection reset"))

		user, err := NewUserReadRepository(db).GetByUsername(ctx, "ahab")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(9), "ishmael", "hash", "0", time.Now()))

	user, err := NewUserReadRepository(db).GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "ishmael", user.Username)
	assert.True(t, user.Balance.IsZero())
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (username) DO NOTHING")).
			WithArgs("ahab", "hash").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(3), "ahab", "hash", "0", time.Now()))

		user, err := NewUserWriteRepository(db).Save(ctx, "ahab", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("username taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (username) DO NOTHING")).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		user, err := NewUserWriteRepository(db).Save(ctx, "ahab", "hash")
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_AddBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("credited", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
			WithArgs(sqlmock.AnyArg(), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("1050"))

		balance, err := NewUserWriteRepository(db).AddBalance(ctx, 1, decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1050).Equal(balance))
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := NewUserWriteRepository(db).AddBalance(ctx, 1, decimal.NewFromInt(50))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserWriteRepository_DebitBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("debited", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND balance >= $1")).
			WithArgs(sqlmock.AnyArg(), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("900"))

		balance, err := NewUserWriteRepository(db).DebitBalance(ctx, 1, decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(900).Equal(balance))
	})

	t.Run("insufficient", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND balance >= $1")).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := NewUserWriteRepository(db).DebitBalance(ctx, 1, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestUserRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("10"))
	mock.ExpectCommit()

	repo := NewUserWriteRepository(db)
	err := NewTxManager(db).Do(context.Background(), func(ctx context.Context) error {
		_, err := repo.AddBalance(ctx, 1, decimal.NewFromInt(10))
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
