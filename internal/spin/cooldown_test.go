package spin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		at := now.Add(-d)
		return &at
	}

	tests := []struct {
		name string
		last LastSpins
		want Status
	}{
		{
			name: "no history",
			last: LastSpins{},
			want: Status{CanSpin: true},
		},
		{
			name: "ip inside window",
			last: LastSpins{IP: ago(time.Hour)},
			want: Status{CanSpin: false, Remaining: 11 * time.Hour, Reason: ReasonIP},
		},
		{
			name: "ip exactly at window boundary is allowed",
			last: LastSpins{IP: ago(Window)},
			want: Status{CanSpin: true},
		},
		{
			name: "user blocks when ip is clear",
			last: LastSpins{IP: ago(13 * time.Hour), User: ago(2 * time.Hour)},
			want: Status{CanSpin: false, Remaining: 10 * time.Hour, Reason: ReasonUser},
		},
		{
			name: "fingerprint blocks last",
			last: LastSpins{Fingerprint: ago(11*time.Hour + 59*time.Minute)},
			want: Status{CanSpin: false, Remaining: time.Minute, Reason: ReasonFingerprint},
		},
		{
			name: "ip is reported before user",
			last: LastSpins{IP: ago(6 * time.Hour), User: ago(time.Hour)},
			want: Status{CanSpin: false, Remaining: 6 * time.Hour, Reason: ReasonIP},
		},
		{
			name: "future timestamp counts as inside window",
			last: LastSpins{IP: ago(-time.Hour)},
			want: Status{CanSpin: false, Remaining: 13 * time.Hour, Reason: ReasonIP},
		},
		{
			name: "all keys old",
			last: LastSpins{IP: ago(24 * time.Hour), User: ago(13 * time.Hour), Fingerprint: ago(12*time.Hour + time.Second)},
			want: Status{CanSpin: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(now, tt.last)
			assert.Equal(t, tt.want, got)
			if got.CanSpin {
				assert.Zero(t, got.RemainingMs())
			}
		})
	}
}

func TestEvaluate_RemainingNeverExceedsWindowForPastSpins(t *testing.T) {
	now := time.Now()
	for _, d := range []time.Duration{0, time.Millisecond, time.Minute, 11 * time.Hour} {
		at := now.Add(-d)
		got := Evaluate(now, LastSpins{IP: &at})
		assert.False(t, got.CanSpin)
		assert.LessOrEqual(t, got.Remaining, Window)
		assert.Equal(t, Window-d, got.Remaining)
	}
}

func TestStatus_RemainingMs(t *testing.T) {
	assert.Equal(t, int64(43200000), Status{Remaining: Window}.RemainingMs())
}
