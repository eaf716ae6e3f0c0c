package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/repositories"
	"github.com/sbilibin2017/whitewhale-bridge/internal/spin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughTx runs fn directly, without a database.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

var spinNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestSpinService(ctrl *gomock.Controller, kafka KafkaWriter) (*SpinService, *MockSpinStore, *MockBalanceWriter, *MockRewardPicker) {
	store := NewMockSpinStore(ctrl)
	balances := NewMockBalanceWriter(ctrl)
	wheel := NewMockRewardPicker(ctrl)
	svc := NewSpinService(&passthroughTx{}, store, balances, wheel, kafka)
	svc.now = func() time.Time { return spinNow }
	return svc, store, balances, wheel
}

func TestLockKeys_Sorted(t *testing.T) {
	uid := int64(42)
	fp := "abc"
	keys := lockKeys(models.SpinAttempt{IP: "10.0.0.1", UserID: &uid, Fingerprint: &fp})
	assert.Equal(t, []string{"spin:fp:abc", "spin:ip:10.0.0.1", "spin:user:42"}, keys)

	assert.Equal(t, []string{"spin:ip:10.0.0.1"}, lockKeys(models.SpinAttempt{IP: "10.0.0.1"}))
}

func TestSpinService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, store, _, _ := newTestSpinService(ctrl, nil)

	store.EXPECT().LastSpins(ctx, "1.2.3.4", nil, nil).Return(models.LastSpinsDB{
		IP: sql.NullTime{Time: spinNow.Add(-2 * time.Hour), Valid: true},
	}, nil)

	status, err := svc.Check(ctx, models.SpinAttempt{IP: "1.2.3.4"})
	require.NoError(t, err)
	assert.False(t, status.CanSpin)
	assert.Equal(t, 10*time.Hour, status.Remaining)
	assert.Equal(t, spin.ReasonIP, status.Reason)
}

func TestSpinService_ExecuteAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	fp := "device-1"
	svc, store, _, wheel := newTestSpinService(ctrl, nil)

	gomock.InOrder(
		store.EXPECT().LockKeys(ctx, []string{"spin:fp:device-1", "spin:ip:1.2.3.4"}).Return(nil),
		store.EXPECT().LastSpins(ctx, "1.2.3.4", nil, &fp).Return(models.LastSpinsDB{}, nil),
		wheel.EXPECT().Pick().Return(spin.Reward{Index: 4, Value: 250, Rarity: "rare"}),
		store.EXPECT().InsertCooldown(ctx, models.SpinCooldownDB{
			IPAddress:   "1.2.3.4",
			Fingerprint: sql.NullString{String: fp, Valid: true},
			Amount:      250,
			Claimed:     false,
			SpunAt:      spinNow,
		}).Return(int64(9), nil),
	)

	res, err := svc.Execute(ctx, models.SpinAttempt{IP: "1.2.3.4", Fingerprint: &fp})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Index)
	assert.Equal(t, int64(250), res.Value)
	assert.Equal(t, "rare", res.Rarity)
	assert.Nil(t, res.Balance)
}

func TestSpinService_ExecuteAuthenticatedCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := int64(7)
	kafka := NewMockKafkaWriter(ctrl)
	svc, store, balances, wheel := newTestSpinService(ctrl, kafka)

	store.EXPECT().LockKeys(ctx, []string{"spin:ip:1.2.3.4", "spin:user:7"}).Return(nil)
	store.EXPECT().LastSpins(ctx, "1.2.3.4", &uid, nil).Return(models.LastSpinsDB{
		User: sql.NullTime{Time: spinNow.Add(-13 * time.Hour), Valid: true},
	}, nil)
	wheel.EXPECT().Pick().Return(spin.Reward{Index: 0, Value: 100, Rarity: "common"})
	store.EXPECT().InsertCooldown(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.SpinCooldownDB) (int64, error) {
			assert.True(t, rec.Claimed)
			assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, rec.UserID)
			return 1, nil
		})
	balances.EXPECT().AddBalance(ctx, uid, decimal.NewFromInt(100)).Return(decimal.NewFromInt(600), nil)
	store.EXPECT().AddHistory(ctx, uid, decimal.NewFromInt(100), spinNow).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Execute(ctx, models.SpinAttempt{IP: "1.2.3.4", UserID: &uid})
	require.NoError(t, err)
	require.NotNil(t, res.Balance)
	assert.True(t, decimal.NewFromInt(600).Equal(*res.Balance))
}

func TestSpinService_ExecuteCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, store, _, _ := newTestSpinService(ctrl, nil)

	store.EXPECT().LockKeys(ctx, gomock.Any()).Return(nil)
	store.EXPECT().LastSpins(ctx, "1.2.3.4", nil, nil).Return(models.LastSpinsDB{
		IP: sql.NullTime{Time: spinNow.Add(-time.Hour), Valid: true},
	}, nil)

	_, err := svc.Execute(ctx, models.SpinAttempt{IP: "1.2.3.4"})
	require.ErrorIs(t, err, ErrCooldownActive)

	var cd *CooldownError
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, 11*time.Hour, cd.Remaining)
	assert.Equal(t, spin.ReasonIP, cd.Reason)
}

func TestSpinService_ExecuteUserVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := int64(7)
	svc, store, balances, wheel := newTestSpinService(ctrl, nil)

	store.EXPECT().LockKeys(ctx, gomock.Any()).Return(nil)
	store.EXPECT().LastSpins(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.LastSpinsDB{}, nil)
	wheel.EXPECT().Pick().Return(spin.Reward{Value: 100})
	store.EXPECT().InsertCooldown(ctx, gomock.Any()).Return(int64(1), nil)
	balances.EXPECT().AddBalance(ctx, uid, gomock.Any()).Return(decimal.Zero, repositories.ErrNotFound)

	_, err := svc.Execute(ctx, models.SpinAttempt{IP: "1.2.3.4", UserID: &uid})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSpinService_Claim(t *testing.T) {
	ctx := context.Background()
	record := &models.SpinCooldownDB{ID: 11, IPAddress: "1.2.3.4", Amount: 250}

	tests := []struct {
		name    string
		amount  decimal.Decimal
		setup   func(store *MockSpinStore, balances *MockBalanceWriter, kafka *MockKafkaWriter)
		wantErr error
	}{
		{
			name:   "success",
			amount: decimal.NewFromInt(250),
			setup: func(store *MockSpinStore, balances *MockBalanceWriter, kafka *MockKafkaWriter) {
				store.EXPECT().LatestUnclaimedByIP(ctx, "1.2.3.4").Return(record, nil)
				store.EXPECT().MarkClaimed(ctx, int64(11), int64(3)).Return(nil)
				store.EXPECT().AddHistory(ctx, int64(3), decimal.NewFromInt(250), spinNow).Return(nil)
				balances.EXPECT().AddBalance(ctx, int64(3), decimal.NewFromInt(250)).Return(decimal.NewFromInt(750), nil)
				kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "nothing to claim",
			amount: decimal.NewFromInt(250),
			setup: func(store *MockSpinStore, balances *MockBalanceWriter, kafka *MockKafkaWriter) {
				store.EXPECT().LatestUnclaimedByIP(ctx, "1.2.3.4").Return(nil, nil)
			},
			wantErr: ErrNoUnclaimedSpin,
		},
		{
			name:   "zero amount",
			amount: decimal.Zero,
			setup: func(store *MockSpinStore, balances *MockBalanceWriter, kafka *MockKafkaWriter) {
				store.EXPECT().LatestUnclaimedByIP(ctx, "1.2.3.4").Return(record, nil)
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name:   "mismatched amount changes nothing",
			amount: decimal.NewFromInt(5000),
			setup: func(store *MockSpinStore, balances *MockBalanceWriter, kafka *MockKafkaWriter) {
				store.EXPECT().LatestUnclaimedByIP(ctx, "1.2.3.4").Return(record, nil)
			},
			wantErr: ErrAmountMismatch,
		},
		{
			name:   "claimed concurrently",
			amount: decimal.NewFromInt(250),
			setup: func(store *MockSpinStore, balances *MockBalanceWriter, kafka *MockKafkaWriter) {
				store.EXPECT().LatestUnclaimedByIP(ctx, "1.2.3.4").Return(record, nil)
				store.EXPECT().MarkClaimed(ctx, int64(11), int64(3)).Return(repositories.ErrAlreadyClaimed)
			},
			wantErr: ErrNoUnclaimedSpin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			kafka := NewMockKafkaWriter(ctrl)
			svc, store, balances, _ := newTestSpinService(ctrl, kafka)
			tt.setup(store, balances, kafka)

			res, err := svc.Claim(ctx, 3, "1.2.3.4", tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(250), res.Claimed)
			assert.True(t, decimal.NewFromInt(750).Equal(res.Balance))
		})
	}
}
