package services

//go:generate mockgen -source=spin.go -destination=spin_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/repositories"
	"github.com/sbilibin2017/whitewhale-bridge/internal/spin"
	"github.com/shopspring/decimal"
)

var (
	ErrCooldownActive  = errors.New("cooldown active")
	ErrNoUnclaimedSpin = errors.New("no unclaimed spin found")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrAmountMismatch  = errors.New("amount mismatch")
)

// CooldownError is returned by Execute while any cooldown key is active.
// It matches ErrCooldownActive.
type CooldownError struct {
	Remaining time.Duration
	Reason    spin.Reason
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active on %s for %s", e.Reason, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

// SpinStore persists spins and enforces their serialization.
type SpinStore interface {
	LockKeys(ctx context.Context, keys []string) error
	LastSpins(ctx context.Context, ip string, userID *int64, fingerprint *string) (models.LastSpinsDB, error)
	InsertCooldown(ctx context.Context, rec models.SpinCooldownDB) (int64, error)
	LatestUnclaimedByIP(ctx context.Context, ip string) (*models.SpinCooldownDB, error)
	MarkClaimed(ctx context.Context, id, userID int64) error
	AddHistory(ctx context.Context, userID int64, amount decimal.Decimal, spunAt time.Time) error
}

// BalanceWriter credits user balances.
type BalanceWriter interface {
	AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// RewardPicker draws one wheel segment.
type RewardPicker interface {
	Pick() spin.Reward
}

// SpinService runs the daily wheel.
type SpinService struct {
	tx       Transactor
	store    SpinStore
	balances BalanceWriter
	wheel    RewardPicker
	events   eventPublisher
	now      func() time.Time
}

// NewSpinService creates a new SpinService. kafkaWriter may be nil.
func NewSpinService(
	tx Transactor,
	store SpinStore,
	balances BalanceWriter,
	wheel RewardPicker,
	kafkaWriter KafkaWriter,
) *SpinService {
	return &SpinService{
		tx:       tx,
		store:    store,
		balances: balances,
		wheel:    wheel,
		events:   eventPublisher{writer: kafkaWriter},
		now:      time.Now,
	}
}

func toLastSpins(db models.LastSpinsDB) spin.LastSpins {
	var last spin.LastSpins
	if db.IP.Valid {
		last.IP = &db.IP.Time
	}
	if db.User.Valid {
		last.User = &db.User.Time
	}
	if db.Fingerprint.Valid {
		last.Fingerprint = &db.Fingerprint.Time
	}
	return last
}

// lockKeys names the advisory locks of an attempt in sorted order so that
// concurrent spins sharing any key never deadlock.
func lockKeys(a models.SpinAttempt) []string {
	keys := []string{"spin:ip:" + a.IP}
	if a.UserID != nil {
		keys = append(keys, "spin:user:"+strconv.FormatInt(*a.UserID, 10))
	}
	if a.Fingerprint != nil {
		keys = append(keys, "spin:fp:"+*a.Fingerprint)
	}
	slices.Sort(keys)
	return keys
}

// Check reports whether the attempt may spin now. It takes no locks.
func (s *SpinService) Check(ctx context.Context, a models.SpinAttempt) (spin.Status, error) {
	last, err := s.store.LastSpins(ctx, a.IP, a.UserID, a.Fingerprint)
	if err != nil {
		logger.Log.Errorw("failed to read last spins", "ip", a.IP, "error", err)
		return spin.Status{}, err
	}
	return spin.Evaluate(s.now(), toLastSpins(last)), nil
}

// Execute spins the wheel. Authenticated rewards are credited immediately;
// anonymous ones stay unclaimed until a later Claim.
func (s *SpinService) Execute(ctx context.Context, a models.SpinAttempt) (*models.SpinResult, error) {
	now := s.now()
	var result *models.SpinResult

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.store.LockKeys(ctx, lockKeys(a)); err != nil {
			return err
		}

		last, err := s.store.LastSpins(ctx, a.IP, a.UserID, a.Fingerprint)
		if err != nil {
			return err
		}
		status := spin.Evaluate(now, toLastSpins(last))
		if !status.CanSpin {
			return &CooldownError{Remaining: status.Remaining, Reason: status.Reason}
		}

		reward := s.wheel.Pick()
		rec := models.SpinCooldownDB{
			IPAddress: a.IP,
			Amount:    reward.Value,
			Claimed:   a.UserID != nil,
			SpunAt:    now,
		}
		if a.UserID != nil {
			rec.UserID = sql.NullInt64{Int64: *a.UserID, Valid: true}
		}
		if a.Fingerprint != nil {
			rec.Fingerprint = sql.NullString{String: *a.Fingerprint, Valid: true}
		}
		if _, err := s.store.InsertCooldown(ctx, rec); err != nil {
			return err
		}

		result = &models.SpinResult{Index: reward.Index, Value: reward.Value, Rarity: reward.Rarity}
		if a.UserID == nil {
			return nil
		}

		amount := decimal.NewFromInt(reward.Value)
		balance, err := s.balances.AddBalance(ctx, *a.UserID, amount)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := s.store.AddHistory(ctx, *a.UserID, amount, now); err != nil {
			return err
		}
		result.Balance = &balance
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCooldownActive) {
			logger.Log.Errorw("failed to execute spin", "ip", a.IP, "error", err)
		}
		return nil, err
	}

	if a.UserID != nil {
		s.events.publish(ctx, newEvent(models.EventSpinCredited, *a.UserID, decimal.NewFromInt(result.Value)))
	}
	return result, nil
}

// Claim credits the latest unclaimed anonymous spin of ip to userID. amount
// must equal the recorded reward.
func (s *SpinService) Claim(ctx context.Context, userID int64, ip string, amount decimal.Decimal) (*models.ClaimResult, error) {
	var result *models.ClaimResult

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		rec, err := s.store.LatestUnclaimedByIP(ctx, ip)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNoUnclaimedSpin
		}

		if !amount.IsPositive() {
			return ErrInvalidAmount
		}
		if !amount.Equal(decimal.NewFromInt(rec.Amount)) {
			return ErrAmountMismatch
		}

		if err := s.store.MarkClaimed(ctx, rec.ID, userID); err != nil {
			if errors.Is(err, repositories.ErrAlreadyClaimed) {
				return ErrNoUnclaimedSpin
			}
			return err
		}
		if err := s.store.AddHistory(ctx, userID, amount, s.now()); err != nil {
			return err
		}

		balance, err := s.balances.AddBalance(ctx, userID, amount)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		result = &models.ClaimResult{Balance: balance, Claimed: rec.Amount}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNoUnclaimedSpin), errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrAmountMismatch):
		default:
			logger.Log.Errorw("failed to claim spin", "user_id", userID, "ip", ip, "error", err)
		}
		return nil, err
	}

	s.events.publish(ctx, newEvent(models.EventSpinCredited, userID, amount))
	return result, nil
}
