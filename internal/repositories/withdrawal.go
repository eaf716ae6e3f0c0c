package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/shopspring/decimal"
)

const withdrawalColumns = `id, user_id, amount, wallet_address, status, created_at`

// WithdrawalRepository stores withdrawal requests
type WithdrawalRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRepository(db *sqlx.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Save inserts a pending withdrawal.
func (r *WithdrawalRepository) Save(ctx context.Context, userID int64, amount decimal.Decimal, walletAddress string) (*models.WithdrawalDB, error) {
	const query = `
		INSERT INTO withdrawals (user_id, amount, wallet_address, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + withdrawalColumns

	args := []any{userID, amount, walletAddress, models.WithdrawalStatusPending}

	var w models.WithdrawalDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, query, args...)

	logQuery(query, args, w.ID, err)

	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUserID returns the withdrawals of a user, newest first.
func (r *WithdrawalRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WithdrawalDB, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var ws []models.WithdrawalDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &ws, query, userID)

	logQuery(query, []any{userID}, len(ws), err)

	if err != nil {
		return nil, err
	}
	return ws, nil
}
