package spin

import "math/rand/v2"

// Segment is one slice of the wheel.
type Segment struct {
	Label  string
	Value  int64
	Rarity string
	Weight int
}

// Reward is the picked segment together with its position on the wheel.
type Reward struct {
	Index  int
	Value  int64
	Rarity string
}

// Segments is the production wheel. The order matches the client animation and
// must not change.
var Segments = []Segment{
	{Label: "50", Value: 50, Rarity: "common", Weight: 30},
	{Label: "200", Value: 200, Rarity: "common", Weight: 25},
	{Label: "250", Value: 250, Rarity: "common", Weight: 20},
	{Label: "340", Value: 340, Rarity: "uncommon", Weight: 10},
	{Label: "100", Value: 100, Rarity: "common", Weight: 28},
	{Label: "650", Value: 650, Rarity: "rare", Weight: 4},
	{Label: "50", Value: 50, Rarity: "common", Weight: 30},
	{Label: "1800", Value: 1800, Rarity: "legendary", Weight: 1},
	{Label: "200", Value: 200, Rarity: "common", Weight: 25},
	{Label: "400", Value: 400, Rarity: "uncommon", Weight: 7},
	{Label: "100", Value: 100, Rarity: "common", Weight: 28},
	{Label: "250", Value: 250, Rarity: "common", Weight: 20},
}

// TotalWeight sums the weights of segments.
func TotalWeight(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.Weight
	}
	return total
}

// Index maps a sample u in [0, TotalWeight) to a segment index by subtracting
// weights in table order until the running value drops to zero or below.
// It falls back to the first segment.
func Index(segments []Segment, u float64) int {
	for i, s := range segments {
		u -= float64(s.Weight)
		if u <= 0 {
			return i
		}
	}
	return 0
}

// Wheel draws rewards from a segment table.
type Wheel struct {
	segments []Segment
	total    float64
	sample   func() float64
}

// NewWheel creates a wheel drawing from the global math/rand/v2 source,
// which is safe for concurrent use.
func NewWheel(segments []Segment) *Wheel {
	return NewWheelWithSource(segments, rand.Float64)
}

// NewWheelWithSource creates a wheel drawing uniform samples in [0,1) from src.
// src must be safe for concurrent use if the wheel is shared.
func NewWheelWithSource(segments []Segment, src func() float64) *Wheel {
	return &Wheel{
		segments: segments,
		total:    float64(TotalWeight(segments)),
		sample:   src,
	}
}

// Pick draws one reward.
func (w *Wheel) Pick() Reward {
	i := Index(w.segments, w.sample()*w.total)
	s := w.segments[i]
	return Reward{Index: i, Value: s.Value, Rarity: s.Rarity}
}
