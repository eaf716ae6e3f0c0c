// Package spin holds the pure rules of the daily spin: the multi-key
// cooldown and the weighted reward wheel.
package spin

import "time"

// Window is the minimum time between two spins sharing any key.
const Window = 12 * time.Hour

// Reason names the key that blocks a spin.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonIP          Reason = "ip"
	ReasonUser        Reason = "user"
	ReasonFingerprint Reason = "fingerprint"
)

// LastSpins holds the latest spin time per key. A nil field means the key is
// absent or has never spun.
type LastSpins struct {
	IP          *time.Time
	User        *time.Time
	Fingerprint *time.Time
}

// Status is the verdict of Evaluate.
type Status struct {
	CanSpin   bool
	Remaining time.Duration
	Reason    Reason
}

// RemainingMs is Remaining in whole milliseconds.
func (s Status) RemainingMs() int64 {
	return s.Remaining.Milliseconds()
}

// Evaluate checks the IP, user and fingerprint keys in that order and denies
// on the first one still inside Window.
func Evaluate(now time.Time, last LastSpins) Status {
	checks := []struct {
		at     *time.Time
		reason Reason
	}{
		{last.IP, ReasonIP},
		{last.User, ReasonUser},
		{last.Fingerprint, ReasonFingerprint},
	}

	for _, c := range checks {
		if c.at == nil {
			continue
		}
		if now.Sub(*c.at) < Window {
			remaining := c.at.Add(Window).Sub(now)
			if remaining < 0 {
				remaining = 0
			}
			return Status{CanSpin: false, Remaining: remaining, Reason: c.reason}
		}
	}

	return Status{CanSpin: true}
}
