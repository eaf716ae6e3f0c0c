package services

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=services

import (
	"context"
	"errors"
	"regexp"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/repositories"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds is returned when a user tries to withdraw more than their balance.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrInvalidWalletAddress is returned for anything that is not a base58 Solana address.
	ErrInvalidWalletAddress = errors.New("invalid solana wallet address")
)

var solanaAddress = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// ValidWalletAddress reports whether s looks like a Solana address.
func ValidWalletAddress(s string) bool {
	return solanaAddress.MatchString(s)
}

// BalanceDebiter removes funds only when the balance covers them.
type BalanceDebiter interface {
	DebitBalance(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// WithdrawalStore persists withdrawal requests.
type WithdrawalStore interface {
	Save(ctx context.Context, userID int64, amount decimal.Decimal, walletAddress string) (*models.WithdrawalDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.WithdrawalDB, error)
}

// WalletService handles balances and withdrawals.
type WalletService struct {
	tx          Transactor
	users       UserReader
	debiter     BalanceDebiter
	withdrawals WithdrawalStore
	events      eventPublisher
}

// NewWalletService creates a new WalletService. kafkaWriter may be nil.
func NewWalletService(
	tx Transactor,
	users UserReader,
	debiter BalanceDebiter,
	withdrawals WithdrawalStore,
	kafkaWriter KafkaWriter,
) *WalletService {
	return &WalletService{
		tx:          tx,
		users:       users,
		debiter:     debiter,
		withdrawals: withdrawals,
		events:      eventPublisher{writer: kafkaWriter},
	}
}

// Balance returns the user's current balance.
func (s *WalletService) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balance", "user_id", userID, "error", err)
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}
	return user.Balance, nil
}

// Withdraw debits amount and records a pending payout to walletAddress.
// It returns the withdrawal and the balance after the debit.
func (s *WalletService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, walletAddress string) (*models.WithdrawalDB, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, decimal.Zero, ErrInvalidAmount
	}
	if !ValidWalletAddress(walletAddress) {
		return nil, decimal.Zero, ErrInvalidWalletAddress
	}

	// Optimistic check. The conditional debit is authoritative.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for withdrawal", "user_id", userID, "error", err)
		return nil, decimal.Zero, err
	}
	if user == nil || user.Balance.LessThan(amount) {
		return nil, decimal.Zero, ErrInsufficientFunds
	}

	var (
		withdrawal *models.WithdrawalDB
		balance    decimal.Decimal
	)
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.debiter.DebitBalance(ctx, userID, amount)
		if err != nil {
			if errors.Is(err, repositories.ErrInsufficientBalance) {
				return ErrInsufficientFunds
			}
			return err
		}
		withdrawal, err = s.withdrawals.Save(ctx, userID, amount, walletAddress)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Errorw("failed to save withdrawal", "user_id", userID, "amount", amount.String(), "error", err)
		}
		return nil, decimal.Zero, err
	}

	ev := newEvent(models.EventWithdrawalRequested, userID, amount)
	ev.WalletAddress = walletAddress
	ev.WithdrawalID = withdrawal.ID
	s.events.publish(ctx, ev)

	return withdrawal, balance, nil
}

// Withdrawals lists the user's withdrawals, newest first.
func (s *WalletService) Withdrawals(ctx context.Context, userID int64) ([]models.WithdrawalDB, error) {
	list, err := s.withdrawals.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list withdrawals", "user_id", userID, "error", err)
		return nil, err
	}
	return list, nil
}
