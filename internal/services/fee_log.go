package services

//go:generate mockgen -source=fee_log.go -destination=fee_log_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// ErrMissingFeeFields is returned when a fee top-up lacks its identifying fields.
var ErrMissingFeeFields = errors.New("missing required fields")

// FeeLogStore is the append-only treasury audit log.
type FeeLogStore interface {
	Append(ctx context.Context, entry models.FeeTopUpEntry) error
	List(ctx context.Context) ([]models.FeeTopUpEntry, error)
}

// FeeLogService records how much the treasury tops up each swap.
type FeeLogService struct {
	store FeeLogStore
	now   func() time.Time
}

// NewFeeLogService creates a new FeeLogService.
func NewFeeLogService(store FeeLogStore) *FeeLogService {
	return &FeeLogService{store: store, now: time.Now}
}

// Log appends a timestamped entry and returns it.
func (s *FeeLogService) Log(ctx context.Context, req models.FeeTopUpRequest) (*models.FeeTopUpEntry, error) {
	if req.TransactionID == "" || req.FromCurrency == "" || req.FromAmount == 0 || req.WalletAddress == "" {
		return nil, ErrMissingFeeFields
	}

	entry := models.FeeTopUpEntry{
		Timestamp:           s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		TransactionID:       req.TransactionID,
		FromCurrency:        req.FromCurrency,
		FromAmount:          req.FromAmount,
		WalletAddress:       req.WalletAddress,
		ChangeNowSolAmount:  req.ChangeNowSolAmount,
		PureMarketSolAmount: req.PureMarketSolAmount,
		TreasuryTopUpSol:    req.TreasuryTopUpSol,
	}
	if err := s.store.Append(ctx, entry); err != nil {
		logger.Log.Errorw("failed to append fee top-up", "transaction_id", req.TransactionID, "error", err)
		return nil, err
	}

	logger.Log.Infof("[Treasury Fee] TX: %s | %v %s | ChangeNow delivers: %v SOL | Pure rate: %.6f SOL | Treasury top-up needed: %.6f SOL",
		entry.TransactionID, entry.FromAmount, strings.ToUpper(entry.FromCurrency),
		entry.ChangeNowSolAmount, entry.PureMarketSolAmount, entry.TreasuryTopUpSol)

	return &entry, nil
}

// List returns every entry in append order.
func (s *FeeLogService) List(ctx context.Context) ([]models.FeeTopUpEntry, error) {
	return s.store.List(ctx)
}
