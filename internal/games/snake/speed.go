package snake

import "time"

// Step interval bounds in milliseconds.
const (
	SpeedMinMS = 70
	SpeedMaxMS = 220
)

var speedLabels = []string{
	"Snail",
	"Leisurely",
	"Slow",
	"Steady",
	"Medium",
	"Brisk",
	"Quick",
	"Fast",
	"Swift",
	"Lightning",
}

// SpeedToInterval maps a slider value in [lo, hi] linearly onto the step
// interval: lo gives 220ms, hi gives 70ms.
func SpeedToInterval(value, lo, hi int) time.Duration {
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	ratio := float64(value-lo) / span
	ms := SpeedMaxMS - ratio*(SpeedMaxMS-SpeedMinMS)
	return time.Duration(ms * float64(time.Millisecond))
}

// SpeedLabel names a slider position. Positions past the label table read "Medium".
func SpeedLabel(value, lo int) string {
	i := value - lo
	if i < 0 || i >= len(speedLabels) {
		return "Medium"
	}
	return speedLabels[i]
}
