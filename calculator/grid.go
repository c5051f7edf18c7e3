package calculator

import (
	"fmt"
	"math"
)

// MaxRangeCount bounds the number of values of one sweep range.
const MaxRangeCount = 1_000_000

// Range is the half-open sweep interval [Start, Stop) walked in Step increments.
type Range struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

// Count is the number of grid values, ceil((Stop-Start)/Step).
func (r Range) Count() int {
	if !(r.Step > 0) || !(r.Stop > r.Start) {
		return 0
	}
	return int(math.Ceil((r.Stop - r.Start) / r.Step))
}

// At returns the i-th value. Values are indexed, never accumulated.
func (r Range) At(i int) float64 {
	return r.Start + float64(i)*r.Step
}

func (r Range) validate(name string) error {
	if math.IsNaN(r.Start) || math.IsNaN(r.Stop) || math.IsInf(r.Start, 0) || math.IsInf(r.Stop, 0) {
		return &ConfigError{Field: name, Reason: "start and stop must be finite"}
	}
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return &ConfigError{Field: name, Reason: fmt.Sprintf("step must be positive, got %v", r.Step)}
	}
	if n := (r.Stop - r.Start) / r.Step; n > MaxRangeCount {
		return &ConfigError{Field: name, Reason: fmt.Sprintf("%s has more than %d values", r, MaxRangeCount)}
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g) step %g", r.Start, r.Stop, r.Step)
}
